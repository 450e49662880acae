package handlers

import (
	"encoding/base64"
	"errors"
	"reflect"
	"strings"

	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors against json field names, not Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs tag validation and flattens failures into the
// envelope's error details.
func validateStruct(s interface{}) []models.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []models.ErrorDetail
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		for _, fe := range fieldErrors {
			details = append(details, models.ErrorDetail{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		return details
	}
	return []models.ErrorDetail{{Message: err.Error()}}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}

func validationFailed(c *fiber.Ctx, details []models.ErrorDetail) error {
	return c.Status(fiber.StatusBadRequest).JSON(
		models.ErrorResponse("Validation failed", details...))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(message))
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(message))
}

// pageParams reads 1-based page/limit pagination query parameters
func pageParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// decodeImageData decodes an embedded base64 image, tolerating a data
// URL prefix ("data:image/jpeg;base64,...").
func decodeImageData(data string) ([]byte, error) {
	if idx := strings.Index(data, ","); idx >= 0 {
		data = data[idx+1:]
	}
	return base64.StdEncoding.DecodeString(strings.TrimSpace(data))
}
