package handlers

import (
	"errors"

	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	notifications repository.NotificationRepository
}

func NewNotificationHandler(repos *repository.Repositories) *NotificationHandler {
	return &NotificationHandler{notifications: repos.Notifications}
}

// GetNotifications - GET /api/notifications/:userId (owner or admin)
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	notifications, err := h.notifications.ListByUser(c.Params("userId"), 0)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{"notifications": notifications}))
}

// GetLatestNotifications - GET /api/notifications/client/:userId/latest
func (h *NotificationHandler) GetLatestNotifications(c *fiber.Ctx) error {
	notifications, err := h.notifications.ListByUser(c.Params("userId"), 10)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{"notifications": notifications}))
}

// GetAllNotifications - GET /api/notifications/all (ADMIN)
// Cross-user listing with the recipient attached to each record.
func (h *NotificationHandler) GetAllNotifications(c *fiber.Ctx) error {
	page, limit := pageParams(c)
	notifications, total, err := h.notifications.ListAll(page, limit)
	if err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("", fiber.Map{
		"notifications": notifications,
		"pagination":    models.NewPagination(page, limit, total),
	}))
}

// MarkRead - PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	notification, err := h.notifications.FindByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Notification not found")
		}
		return err
	}

	user := middleware.CurrentUser(c)
	if user.Role != models.RoleAdmin && notification.UserID != user.ID {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Access denied"))
	}

	if err := h.notifications.MarkRead(notification.ID); err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("Notification marked as read", nil))
}

// MarkAllRead - PUT /api/notifications/client/:userId/read-all (owner or admin)
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.notifications.MarkAllRead(c.Params("userId")); err != nil {
		return err
	}
	return c.JSON(models.SuccessResponse("All notifications marked as read", nil))
}
