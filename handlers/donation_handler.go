package handlers

import (
	"errors"
	"fmt"

	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DonationHandler struct {
	donations  repository.DonationRepository
	orphanages repository.OrphanageRepository
	users      repository.UserRepository
	notifier   *Notifier
}

func NewDonationHandler(repos *repository.Repositories, notifier *Notifier) *DonationHandler {
	return &DonationHandler{
		donations:  repos.Donations,
		orphanages: repos.Orphanages,
		users:      repos.Users,
		notifier:   notifier,
	}
}

type CreateDonationRequest struct {
	OrphanageID     string              `json:"orphanageId" validate:"required"`
	DonationType    models.DonationType `json:"donationType" validate:"required,oneof=monetary items"`
	Amount          float64             `json:"amount" validate:"gte=0"`
	ItemDescription string              `json:"itemDescription" validate:"max=5000"`
}

type DonationStatusRequest struct {
	Status  models.DonationStatus `json:"status" validate:"required,oneof=approved rejected"`
	Message string                `json:"message" validate:"max=5000"`
}

// CreateDonation - POST /api/donations
// Admins are notified so they can review the submission.
func (h *DonationHandler) CreateDonation(c *fiber.Ctx) error {
	var req CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}
	if req.DonationType == models.DonationMonetary && req.Amount <= 0 {
		return validationFailed(c, []models.ErrorDetail{
			{Field: "amount", Message: "must be greater than 0 for monetary donations"},
		})
	}
	if req.DonationType == models.DonationItems && req.ItemDescription == "" {
		return validationFailed(c, []models.ErrorDetail{
			{Field: "itemDescription", Message: "is required for item donations"},
		})
	}

	orphanage, err := h.orphanages.FindByID(req.OrphanageID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return badRequest(c, "Orphanage not found")
		}
		return err
	}

	donor := middleware.CurrentUser(c)
	donation := models.Donation{
		DonorID:      donor.ID,
		OrphanageID:  orphanage.ID,
		DonationType: req.DonationType,
		Amount:       req.Amount,
		ItemDesc:     req.ItemDescription,
		Status:       models.DonationPending,
	}
	if req.DonationType == models.DonationMonetary {
		donation.PaymentReference = uuid.NewString()
	}

	if err := h.donations.Create(&donation); err != nil {
		return err
	}

	admins, _, err := h.users.ListByRole(models.RoleAdmin, 1, 100)
	if err == nil {
		for _, admin := range admins {
			h.notifier.Notify(admin.ID, models.NotifDonationReceived,
				"New Donation Received",
				fmt.Sprintf("%s wants to donate to %s", donor.FullName(), orphanage.Name),
				donation.ID)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(
		models.SuccessResponse("Donation submitted successfully", fiber.Map{"donation": donation}))
}

// GetMyDonations - GET /api/user/donations
func (h *DonationHandler) GetMyDonations(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	donations, err := h.donations.ListByDonor(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{"donations": donations}))
}

// GetDonationQRCode - GET /api/donations/:id/qrcode (donor or admin)
// Renders the payment reference of a monetary donation as a PNG.
func (h *DonationHandler) GetDonationQRCode(c *fiber.Ctx) error {
	donation, err := h.donations.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Donation not found")
		}
		return err
	}

	user := middleware.CurrentUser(c)
	if user.Role != models.RoleAdmin && donation.DonorID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access denied"))
	}
	if donation.DonationType != models.DonationMonetary {
		return badRequest(c, "QR codes are only available for monetary donations")
	}

	content := fmt.Sprintf("jalai://donation/%s?ref=%s&amount=%.2f",
		donation.ID, donation.PaymentReference, donation.Amount)
	png, err := utils.GenerateQRCode(content)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// UpdateDonationStatus - PUT /api/admin/donations/:id/status (ADMIN)
// The donor is notified of the decision.
func (h *DonationHandler) UpdateDonationStatus(c *fiber.Ctx) error {
	var req DonationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	donation, err := h.donations.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Donation not found")
		}
		return err
	}

	donation.Status = req.Status
	donation.AdminMessage = req.Message
	if err := h.donations.Update(donation); err != nil {
		return err
	}

	orphanageName := "the orphanage"
	if donation.Orphanage != nil {
		orphanageName = donation.Orphanage.Name
	}
	title := "Donation Approved"
	if req.Status == models.DonationRejected {
		title = "Donation Rejected"
	}
	message := fmt.Sprintf("Your donation to %s has been %s.", orphanageName, req.Status)
	if req.Message != "" {
		message += " " + req.Message
	}
	h.notifier.Notify(donation.DonorID, models.NotifDonationStatus, title, message, donation.ID)

	return c.JSON(models.SuccessResponse("Donation status updated", fiber.Map{"donation": donation}))
}
