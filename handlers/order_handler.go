package handlers

import (
	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	orders repository.OrderRepository
}

func NewOrderHandler(repos *repository.Repositories) *OrderHandler {
	return &OrderHandler{orders: repos.Orders}
}

type OrderItemRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Price     float64 `json:"price" validate:"gte=0"`
}

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrder - POST /api/orders
// Orders are recorded as submitted; there is no inventory decrement or
// stock-lock against product availability.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	user := middleware.CurrentUser(c)
	order := models.Order{
		BuyerID:       user.ID,
		Status:        models.OrderPending,
		PaymentStatus: models.PaymentUnpaid,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		order.Total += float64(item.Quantity) * item.Price
	}

	if err := h.orders.Create(&order); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(
		models.SuccessResponse("Order placed successfully", fiber.Map{"order": order}))
}

// GetMyOrders - GET /api/user/orders
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	orders, err := h.orders.ListByBuyer(user.ID)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{"orders": orders}))
}

// GetOrdersForUser - GET /api/orders/user/:userId (owner or admin)
func (h *OrderHandler) GetOrdersForUser(c *fiber.Ctx) error {
	orders, err := h.orders.ListByBuyer(c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{"orders": orders}))
}
