package handlers

import (
	"errors"
	"strings"

	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/gofiber/fiber/v2"
)

type OrphanageHandler struct {
	orphanages repository.OrphanageRepository
}

func NewOrphanageHandler(repos *repository.Repositories) *OrphanageHandler {
	return &OrphanageHandler{orphanages: repos.Orphanages}
}

type RegisterOrphanageRequest struct {
	Name                string   `json:"name" validate:"required,max=255"`
	Email               string   `json:"email" validate:"required,email"`
	PhoneNumber         string   `json:"phoneNumber" validate:"max=20"`
	Location            string   `json:"location" validate:"required,max=255"`
	ApproximateChildren int      `json:"approximateChildren" validate:"gte=0"`
	Description         string   `json:"description" validate:"max=5000"`
	NeedsDescription    string   `json:"needsDescription" validate:"max=5000"`
	Images              []string `json:"images"`
}

// GetOrphanages - GET /api/orphanages
// Public list: only verified orphanages.
func (h *OrphanageHandler) GetOrphanages(c *fiber.Ctx) error {
	orphanages, err := h.orphanages.ListVerified()
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{"orphanages": orphanages}))
}

// GetOrphanage - GET /api/orphanages/:id
// Unverified orphanages are hidden from everyone but admins.
func (h *OrphanageHandler) GetOrphanage(c *fiber.Ctx) error {
	orphanage, err := h.orphanages.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Orphanage not found")
		}
		return err
	}

	user := middleware.CurrentUser(c)
	if !orphanage.Verified && (user == nil || user.Role != models.RoleAdmin) {
		return notFound(c, "Orphanage not found or not yet verified")
	}

	return c.JSON(models.SuccessResponse("", fiber.Map{"orphanage": orphanage}))
}

// RegisterOrphanage - POST /api/orphanages
// Public registration; new orphanages start unverified and wait for
// admin review.
func (h *OrphanageHandler) RegisterOrphanage(c *fiber.Ctx) error {
	var req RegisterOrphanageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	orphanage := models.Orphanage{
		Name:             req.Name,
		ContactEmail:     req.Email,
		ContactPhone:     req.PhoneNumber,
		Location:         req.Location,
		Description:      req.Description,
		NeedsDescription: req.NeedsDescription,
		CurrentChildren:  req.ApproximateChildren,
		// Leave 20% headroom over the reported headcount.
		Capacity: req.ApproximateChildren + (req.ApproximateChildren+4)/5,
		Verified: false,
		Images:   req.Images,
	}
	if orphanage.Description == "" {
		orphanage.Description = "Orphanage located in " + req.Location
	}
	if orphanage.NeedsDescription == "" {
		orphanage.NeedsDescription = "General support needed"
	}
	if len(req.Images) > 0 {
		orphanage.ImageURL = req.Images[0]
	}

	if err := h.orphanages.Create(&orphanage); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(
		"Orphanage registration submitted successfully! It will be reviewed by administrators.",
		fiber.Map{"orphanage": orphanage}))
}

// ApproveOrphanage - PUT /api/orphanages/:id/approve (ADMIN)
func (h *OrphanageHandler) ApproveOrphanage(c *fiber.Ctx) error {
	orphanage, err := h.orphanages.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Orphanage not found")
		}
		return err
	}

	orphanage.Approve()
	if err := h.orphanages.Update(orphanage); err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("Orphanage approved successfully", fiber.Map{"orphanage": orphanage}))
}

// RejectOrphanage - PUT /api/orphanages/:id/reject (ADMIN)
func (h *OrphanageHandler) RejectOrphanage(c *fiber.Ctx) error {
	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return badRequest(c, "Rejection reason is required")
	}

	orphanage, err := h.orphanages.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Orphanage not found")
		}
		return err
	}

	orphanage.RejectWith(req.Reason)
	if err := h.orphanages.Update(orphanage); err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("Orphanage rejected successfully", fiber.Map{"orphanage": orphanage}))
}
