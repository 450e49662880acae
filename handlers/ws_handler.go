package handlers

import (
	"log"

	"github.com/ILoveTech2001/JALAI-2/internal/ws"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// SocketHandler upgrades authenticated users onto the notification hub.
type SocketHandler struct {
	Hub       *ws.Hub
	users     repository.UserRepository
	notifs    repository.NotificationRepository
	jwtSecret string
}

func NewSocketHandler(hub *ws.Hub, repos *repository.Repositories, jwtSecret string) *SocketHandler {
	return &SocketHandler{
		Hub:       hub,
		users:     repos.Users,
		notifs:    repos.Notifications,
		jwtSecret: jwtSecret,
	}
}

// UpgradeMiddleware authenticates the connection and ensures the client
// is actually asking for a WebSocket upgrade. Browsers cannot set an
// Authorization header on WebSocket requests, so the access token is
// taken from the "token" query parameter instead.
func (h *SocketHandler) UpgradeMiddleware(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	token := c.Query("token")
	if token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Authentication token required")
	}

	claims, err := utils.ParseToken(token, h.jwtSecret)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}
	if utils.ClaimString(claims, "type") != utils.TokenTypeAccess {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid token type")
	}

	user, err := h.users.FindByID(utils.ClaimString(claims, "user_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusUnauthorized, "Account is deactivated")
	}

	c.Locals("allowed", true)
	c.Locals("user_id", user.ID)
	return c.Next()
}

// Handler returns the websocket handler function.
func (h *SocketHandler) Handler() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		userID, ok := c.Locals("user_id").(string)
		if !ok || userID == "" {
			log.Println("Invalid or missing user ID in WebSocket connection")
			c.Close()
			return
		}

		client := &ws.Client{
			Hub:           h.Hub,
			Conn:          c,
			Send:          make(chan []byte, 256),
			UserID:        userID,
			Notifications: h.notifs,
		}

		client.Hub.Register <- client

		go client.WritePump()
		client.ReadPump()
	})
}
