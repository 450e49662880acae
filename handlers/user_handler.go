package handlers

import (
	"errors"

	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users    repository.UserRepository
	products repository.ProductRepository
}

func NewUserHandler(repos *repository.Repositories) *UserHandler {
	return &UserHandler{users: repos.Users, products: repos.Products}
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,max=50"`
	LastName  string `json:"lastName" validate:"omitempty,max=50"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// GetProfile - GET /api/users/profile
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(models.SuccessResponse("", fiber.Map{"user": user}))
}

// UpdateProfile - PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	user := middleware.CurrentUser(c)
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := h.users.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return badRequest(c, "Email already in use")
		}
		return err
	}

	return c.JSON(models.SuccessResponse("Profile updated successfully", fiber.Map{"user": user}))
}

// ChangePassword - PUT /api/users/change-password
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	user := middleware.CurrentUser(c)
	if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
		return badRequest(c, "Current password is incorrect")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	if err := h.users.Update(user); err != nil {
		return err
	}

	return c.JSON(models.SuccessResponse("Password changed successfully", nil))
}

// GetUserProducts - GET /api/users/:id/products
// Public view: only the seller's ACTIVE listings.
func (h *UserHandler) GetUserProducts(c *fiber.Ctx) error {
	user, err := h.users.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "User not found")
		}
		return err
	}

	page, limit := pageParams(c)
	products, total, err := h.products.List(repository.ProductFilter{
		SellerID: user.ID,
		Status:   models.StatusActive,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(models.SuccessResponse("", fiber.Map{
		"user": fiber.Map{
			"id":        user.ID,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
		"products":   products,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetMyProducts - GET /api/users/my-products
// The seller sees every status of their own listings.
func (h *UserHandler) GetMyProducts(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	page, limit := pageParams(c)
	products, total, err := h.products.List(repository.ProductFilter{
		SellerID: user.ID,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(models.SuccessResponse("", fiber.Map{
		"products":   products,
		"pagination": models.NewPagination(page, limit, total),
	}))
}
