package handlers

import (
	"errors"

	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

func NewCategoryHandler(repos *repository.Repositories) *CategoryHandler {
	return &CategoryHandler{categories: repos.Categories, products: repos.Products}
}

// CategoryRequest serves both create and update. Description and
// SortOrder are pointers so an update can clear them, while an absent
// field leaves the stored value alone.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Slug        string  `json:"slug" validate:"omitempty,max=100"`
	SortOrder   *int    `json:"sortOrder"`
	IsActive    *bool   `json:"isActive"`
	ImageData   string  `json:"imageData"`
	ImageName   string  `json:"imageName"`
	ImageType   string  `json:"imageType"`
}

// GetCategories - GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categories.ListActive()
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{"categories": categories}))
}

// GetCategory - GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.categories.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Category not found")
		}
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{"category": category}))
}

// GetCategoryProducts - GET /api/categories/:id/products
func (h *CategoryHandler) GetCategoryProducts(c *fiber.Ctx) error {
	category, err := h.categories.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Category not found")
		}
		return err
	}

	page, limit := pageParams(c)
	products, total, err := h.products.List(repository.ProductFilter{
		CategoryID: category.ID,
		Status:     models.StatusActive,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(models.SuccessResponse("", fiber.Map{
		"category":   category,
		"products":   products,
		"pagination": models.NewPagination(page, limit, total),
	}))
}

// GetCategoryImage - GET /api/categories/:id/image
func (h *CategoryHandler) GetCategoryImage(c *fiber.Ctx) error {
	category, err := h.categories.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Category not found")
		}
		return err
	}
	if len(category.ImageData) == 0 {
		return notFound(c, "Category has no image")
	}

	contentType := category.ImageType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(category.ImageData)
}

// CreateCategory - POST /api/categories (ADMIN)
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	category := models.Category{
		Name:     req.Name,
		Slug:     req.Slug,
		IsActive: true,
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ImageData != "" {
		data, err := decodeImageData(req.ImageData)
		if err != nil {
			return badRequest(c, "Invalid image data format")
		}
		category.ImageData = data
		category.ImageName = req.ImageName
		category.ImageType = req.ImageType
	}

	if err := h.categories.Create(&category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return badRequest(c, "Category already exists")
		}
		return err
	}

	category.SyncImageURL()
	return c.Status(fiber.StatusCreated).JSON(
		models.SuccessResponse("Category created successfully", fiber.Map{"category": category}))
}

// UpdateCategory - PUT /api/categories/:id (ADMIN)
// The slug is re-derived when the name changes and no explicit slug was
// supplied in the same request.
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	category, err := h.categories.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Category not found")
		}
		return err
	}

	var req CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	nameChanged := req.Name != "" && req.Name != category.Name
	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Slug != "" {
		category.Slug = req.Slug
	} else if nameChanged {
		category.Slug = utils.Slugify(category.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	if req.ImageData != "" {
		data, err := decodeImageData(req.ImageData)
		if err != nil {
			return badRequest(c, "Invalid image data format")
		}
		category.ImageData = data
		category.ImageName = req.ImageName
		category.ImageType = req.ImageType
	}

	if err := h.categories.Update(category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return badRequest(c, "Category already exists")
		}
		return err
	}

	category.SyncImageURL()
	return c.JSON(models.SuccessResponse("Category updated successfully", fiber.Map{"category": category}))
}

// DeleteCategory - DELETE /api/categories/:id (ADMIN)
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Category not found")
		}
		return err
	}
	return c.JSON(models.SuccessResponse("Category deleted successfully", nil))
}
