package handlers

import (
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler serves the paginated aggregate views behind /api/admin
type AdminHandler struct {
	repos *repository.Repositories
}

func NewAdminHandler(repos *repository.Repositories) *AdminHandler {
	return &AdminHandler{repos: repos}
}

// GetDashboardStats - GET /api/admin/dashboard/stats
func (h *AdminHandler) GetDashboardStats(c *fiber.Ctx) error {
	_, clients, err := h.repos.Users.ListByRole(models.RoleClient, 1, 1)
	if err != nil {
		return err
	}
	totalProducts, err := h.repos.Products.CountByStatus("")
	if err != nil {
		return err
	}
	pendingProducts, err := h.repos.Products.CountByStatus(models.StatusPendingApproval)
	if err != nil {
		return err
	}
	activeProducts, err := h.repos.Products.CountByStatus(models.StatusActive)
	if err != nil {
		return err
	}
	soldProducts, err := h.repos.Products.CountByStatus(models.StatusSold)
	if err != nil {
		return err
	}
	_, orders, err := h.repos.Orders.List(1, 1)
	if err != nil {
		return err
	}
	_, donations, err := h.repos.Donations.List(1, 1)
	if err != nil {
		return err
	}
	_, orphanages, err := h.repos.Orphanages.List(1, 1)
	if err != nil {
		return err
	}

	return c.JSON(models.SuccessResponse("", fiber.Map{
		"clients":         clients,
		"products":        totalProducts,
		"pendingProducts": pendingProducts,
		"activeProducts":  activeProducts,
		"soldProducts":    soldProducts,
		"orders":          orders,
		"donations":       donations,
		"orphanages":      orphanages,
	}))
}

// GetClients - GET /api/admin/clients
func (h *AdminHandler) GetClients(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	clients, total, err := h.repos.Users.ListByRole(models.RoleClient, page, limit)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{
		"clients":    clients,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetProducts - GET /api/admin/products
// Unlike the public listing, every status is visible here.
func (h *AdminHandler) GetProducts(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	status := models.ProductStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return badRequest(c, "Invalid status filter")
	}
	products, total, err := h.repos.Products.List(repository.ProductFilter{
		Status: status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{
		"products":   products,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetOrders - GET /api/admin/orders
func (h *AdminHandler) GetOrders(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	orders, total, err := h.repos.Orders.List(page, limit)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{
		"orders":     orders,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetDonations - GET /api/admin/donations
func (h *AdminHandler) GetDonations(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	donations, total, err := h.repos.Donations.List(page, limit)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{
		"donations":  donations,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetOrphanages - GET /api/admin/orphanages
// Includes unverified and rejected entries.
func (h *AdminHandler) GetOrphanages(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	orphanages, total, err := h.repos.Orphanages.List(page, limit)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{
		"orphanages": orphanages,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetReviews - GET /api/admin/reviews
func (h *AdminHandler) GetReviews(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	reviews, total, err := h.repos.Reviews.List(page, limit)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{
		"reviews":    reviews,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetPayments - GET /api/admin/payments
func (h *AdminHandler) GetPayments(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	payments, total, err := h.repos.Payments.List(page, limit)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{
		"payments":   payments,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetCategories - GET /api/admin/categories
// Includes inactive categories.
func (h *AdminHandler) GetCategories(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	categories, total, err := h.repos.Categories.List(page, limit)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{
		"categories": categories,
		"pagination": models.NewPagination(page, limit, total),
	}))
}
