package handlers

import (
	"errors"
	"strings"

	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	notifier   *Notifier
}

func NewProductHandler(repos *repository.Repositories, notifier *Notifier) *ProductHandler {
	return &ProductHandler{
		products:   repos.Products,
		categories: repos.Categories,
		notifier:   notifier,
	}
}

// CreateProductRequest carries an optional base64-embedded image
type CreateProductRequest struct {
	Name        string                  `json:"name" validate:"required,max=255"`
	Description string                  `json:"description" validate:"max=5000"`
	Price       float64                 `json:"price" validate:"gte=0"`
	CategoryID  string                  `json:"categoryId" validate:"required"`
	Condition   models.ProductCondition `json:"condition" validate:"omitempty,oneof=NEW LIKE_NEW GOOD FAIR POOR"`
	ImageData   string                  `json:"imageData"`
	ImageName   string                  `json:"imageName"`
	ImageType   string                  `json:"imageType"`
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

// GetProducts - GET /api/products
// Non-admin callers always see ACTIVE listings regardless of the status
// filter they ask for.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	filter := repository.ProductFilter{
		CategoryID: c.Query("category"),
		Search:     c.Query("search"),
		Page:       page,
		Limit:      limit,
	}
	if c.Query("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	user := middleware.CurrentUser(c)
	if user != nil && user.Role == models.RoleAdmin {
		status := models.ProductStatus(c.Query("status"))
		if status != "" && !status.Valid() {
			return badRequest(c, "Invalid status filter")
		}
		filter.Status = status
	} else {
		filter.Status = models.StatusActive
	}

	products, total, err := h.products.List(filter)
	if err != nil {
		return err
	}

	return c.JSON(models.SuccessResponse("", fiber.Map{
		"products":   products,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetProduct - GET /api/products/:id
// Each fetch of an ACTIVE listing counts one view; there is no
// per-viewer de-duplication.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.products.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return err
	}

	user := middleware.CurrentUser(c)
	isPrivileged := user != nil && (user.Role == models.RoleAdmin || user.ID == product.SellerID)
	if product.Status != models.StatusActive && !isPrivileged {
		return notFound(c, "Product not found")
	}

	if product.Status == models.StatusActive {
		if err := h.products.IncrementViews(product.ID); err == nil {
			product.Views++
		}
	}

	return c.JSON(models.SuccessResponse("", fiber.Map{"product": product}))
}

// GetProductImage - GET /api/products/:id/image
func (h *ProductHandler) GetProductImage(c *fiber.Ctx) error {
	product, err := h.products.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return err
	}
	if len(product.ImageData) == 0 {
		return notFound(c, "Product has no image")
	}

	contentType := product.ImageType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(product.ImageData)
}

// CreateProduct - POST /api/products (CLIENT, ADMIN)
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	if _, err := h.categories.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return badRequest(c, "Category not found")
		}
		return err
	}

	user := middleware.CurrentUser(c)
	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Condition:   req.Condition,
		SellerID:    user.ID,
		Status:      models.StatusPendingApproval,
	}
	if product.Condition == "" {
		product.Condition = models.ConditionGood
	}

	// An unparsable embedded image aborts the whole create.
	if req.ImageData != "" {
		data, err := decodeImageData(req.ImageData)
		if err != nil {
			return badRequest(c, "Invalid image data format")
		}
		product.ImageData = data
		product.ImageName = req.ImageName
		product.ImageType = req.ImageType
	}

	if err := h.products.Create(&product); err != nil {
		return err
	}

	created, err := h.products.FindByID(product.ID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(
		models.SuccessResponse("Product created successfully", fiber.Map{"product": created}))
}

// UpdateProduct - PUT /api/products/:id (owner or admin)
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	product, err := h.products.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return err
	}

	user := middleware.CurrentUser(c)
	if user.Role != models.RoleAdmin && product.SellerID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access denied"))
	}

	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	if req.CategoryID != product.CategoryID {
		if _, err := h.categories.FindByID(req.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return badRequest(c, "Category not found")
			}
			return err
		}
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.CategoryID = req.CategoryID
	if req.Condition != "" {
		product.Condition = req.Condition
	}
	if req.ImageData != "" {
		data, err := decodeImageData(req.ImageData)
		if err != nil {
			return badRequest(c, "Invalid image data format")
		}
		product.ImageData = data
		product.ImageName = req.ImageName
		product.ImageType = req.ImageType
	}

	if err := h.products.Update(product); err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("Product updated successfully", fiber.Map{"product": product}))
}

// DeleteProduct - DELETE /api/products/:id (owner or admin)
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	product, err := h.products.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return err
	}

	user := middleware.CurrentUser(c)
	if user.Role != models.RoleAdmin && product.SellerID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access denied"))
	}

	if err := h.products.Delete(product.ID); err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("Product deleted successfully", nil))
}

// ApproveProduct - PUT /api/products/:id/approve (ADMIN)
// Re-approving simply re-stamps the approval metadata.
func (h *ProductHandler) ApproveProduct(c *fiber.Ctx) error {
	product, err := h.products.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return err
	}

	admin := middleware.CurrentUser(c)
	product.Approve(admin.ID)
	if err := h.products.Update(product); err != nil {
		return err
	}

	h.notifier.Notify(product.SellerID, models.NotifProductApproved,
		"Product Approved",
		"Your product \""+product.Name+"\" has been approved",
		product.ID)

	return c.JSON(models.SuccessResponse("Product approved successfully", fiber.Map{"product": product}))
}

// RejectProduct - PUT /api/products/:id/reject (ADMIN)
func (h *ProductHandler) RejectProduct(c *fiber.Ctx) error {
	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if strings.TrimSpace(req.Reason) == "" {
		return badRequest(c, "Rejection reason is required")
	}

	product, err := h.products.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return err
	}

	product.Reject(req.Reason)
	if err := h.products.Update(product); err != nil {
		return err
	}

	h.notifier.Notify(product.SellerID, models.NotifProductRejected,
		"Product Rejected",
		"Your product \""+product.Name+"\" has been rejected: "+req.Reason,
		product.ID)

	return c.JSON(models.SuccessResponse("Product rejected successfully", fiber.Map{"product": product}))
}

// MarkProductSold - PUT /api/products/:id/sold (owner)
func (h *ProductHandler) MarkProductSold(c *fiber.Ctx) error {
	product, err := h.products.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Product not found")
		}
		return err
	}

	user := middleware.CurrentUser(c)
	if user.Role != models.RoleAdmin && product.SellerID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access denied"))
	}

	product.MarkSold()
	if err := h.products.Update(product); err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("Product marked as sold", fiber.Map{"product": product}))
}
