package routes

import (
	"time"

	"github.com/ILoveTech2001/JALAI-2/config"
	"github.com/ILoveTech2001/JALAI-2/handlers"
	"github.com/ILoveTech2001/JALAI-2/internal/ws"
	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Router holds every handler and wires them onto the fiber app.
type Router struct {
	cfg   *config.Config
	repos *repository.Repositories
	db    *gorm.DB // nil when running on the memory backend
	hub   *ws.Hub

	auth          *handlers.AuthHandler
	users         *handlers.UserHandler
	categories    *handlers.CategoryHandler
	products      *handlers.ProductHandler
	orders        *handlers.OrderHandler
	donations     *handlers.DonationHandler
	orphanages    *handlers.OrphanageHandler
	notifications *handlers.NotificationHandler
	admin         *handlers.AdminHandler
	socket        *handlers.SocketHandler

	startedAt time.Time
}

func NewRouter(cfg *config.Config, repos *repository.Repositories, db *gorm.DB, hub *ws.Hub) *Router {
	notifier := handlers.NewNotifier(repos.Notifications, hub)

	return &Router{
		cfg:   cfg,
		repos: repos,
		db:    db,
		hub:   hub,

		auth:          handlers.NewAuthHandler(repos, cfg),
		users:         handlers.NewUserHandler(repos),
		categories:    handlers.NewCategoryHandler(repos),
		products:      handlers.NewProductHandler(repos, notifier),
		orders:        handlers.NewOrderHandler(repos),
		donations:     handlers.NewDonationHandler(repos, notifier),
		orphanages:    handlers.NewOrphanageHandler(repos),
		notifications: handlers.NewNotificationHandler(repos),
		admin:         handlers.NewAdminHandler(repos),
		socket:        handlers.NewSocketHandler(hub, repos, cfg.JWTSecret),

		startedAt: time.Now(),
	}
}

// SetupRoutes mounts the full REST surface plus the websocket endpoint.
func (r *Router) SetupRoutes(app *fiber.App) {
	authenticate := middleware.Authenticate(r.repos.Users, r.cfg.JWTSecret)
	maybeAuth := middleware.OptionalAuthenticate(r.repos.Users, r.cfg.JWTSecret)
	adminOnly := middleware.Authorize(models.RoleAdmin)

	app.Get("/health", r.healthCheck)

	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", r.auth.Register)
	auth.Post("/login", r.auth.Login)
	auth.Post("/refresh", r.auth.Refresh)
	auth.Post("/logout", authenticate, r.auth.Logout)
	auth.Get("/me", authenticate, r.auth.Me)

	// Users
	users := api.Group("/users")
	users.Get("/profile", authenticate, r.users.GetProfile)
	users.Put("/profile", authenticate, r.users.UpdateProfile)
	users.Put("/change-password", authenticate, r.users.ChangePassword)
	users.Get("/my-products", authenticate, r.users.GetMyProducts)
	users.Get("/:id/products", r.users.GetUserProducts)

	// Categories
	categories := api.Group("/categories")
	categories.Get("/", r.categories.GetCategories)
	categories.Get("/:id", r.categories.GetCategory)
	categories.Get("/:id/products", r.categories.GetCategoryProducts)
	categories.Get("/:id/image", r.categories.GetCategoryImage)
	categories.Post("/", authenticate, adminOnly, r.categories.CreateCategory)
	categories.Put("/:id", authenticate, adminOnly, r.categories.UpdateCategory)
	categories.Delete("/:id", authenticate, adminOnly, r.categories.DeleteCategory)

	// Products
	products := api.Group("/products")
	products.Get("/", maybeAuth, r.products.GetProducts)
	products.Get("/:id", maybeAuth, r.products.GetProduct)
	products.Get("/:id/image", r.products.GetProductImage)
	products.Post("/", authenticate, middleware.Authorize(models.RoleClient, models.RoleAdmin), r.products.CreateProduct)
	products.Put("/:id/approve", authenticate, adminOnly, r.products.ApproveProduct)
	products.Put("/:id/reject", authenticate, adminOnly, r.products.RejectProduct)
	products.Put("/:id/sold", authenticate, r.products.MarkProductSold)
	products.Put("/:id", authenticate, r.products.UpdateProduct)
	products.Delete("/:id", authenticate, r.products.DeleteProduct)

	// Orders
	api.Post("/orders", authenticate, r.orders.CreateOrder)
	api.Get("/user/orders", authenticate, r.orders.GetMyOrders)
	api.Get("/orders/user/:userId", authenticate, middleware.OwnerOrAdmin("userId"), r.orders.GetOrdersForUser)

	// Donations
	api.Post("/donations", authenticate, r.donations.CreateDonation)
	api.Get("/user/donations", authenticate, r.donations.GetMyDonations)
	api.Get("/donations/:id/qrcode", authenticate, r.donations.GetDonationQRCode)

	// Orphanages
	orphanages := api.Group("/orphanages")
	orphanages.Get("/", r.orphanages.GetOrphanages)
	orphanages.Get("/:id", maybeAuth, r.orphanages.GetOrphanage)
	orphanages.Post("/", r.orphanages.RegisterOrphanage)
	orphanages.Put("/:id/approve", authenticate, adminOnly, r.orphanages.ApproveOrphanage)
	orphanages.Put("/:id/reject", authenticate, adminOnly, r.orphanages.RejectOrphanage)

	// Notifications
	notifications := api.Group("/notifications", authenticate)
	notifications.Get("/all", adminOnly, r.notifications.GetAllNotifications)
	notifications.Get("/client/:userId/latest", middleware.OwnerOrAdmin("userId"), r.notifications.GetLatestNotifications)
	notifications.Put("/client/:userId/read-all", middleware.OwnerOrAdmin("userId"), r.notifications.MarkAllRead)
	notifications.Put("/:id/read", r.notifications.MarkRead)
	notifications.Get("/:userId", middleware.OwnerOrAdmin("userId"), r.notifications.GetNotifications)

	// Admin
	admin := api.Group("/admin", authenticate, adminOnly)
	admin.Get("/dashboard/stats", r.admin.GetDashboardStats)
	admin.Get("/clients", r.admin.GetClients)
	admin.Get("/products", r.admin.GetProducts)
	admin.Get("/orders", r.admin.GetOrders)
	admin.Get("/donations", r.admin.GetDonations)
	admin.Get("/orphanages", r.admin.GetOrphanages)
	admin.Get("/reviews", r.admin.GetReviews)
	admin.Get("/payments", r.admin.GetPayments)
	admin.Get("/categories", r.admin.GetCategories)
	admin.Put("/donations/:id/status", r.donations.UpdateDonationStatus)

	// Real-time notification stream
	app.Use("/ws/notifications", r.socket.UpgradeMiddleware)
	app.Get("/ws/notifications", r.socket.Handler())
}

// healthCheck reports process uptime and, when a database is attached,
// its reachability.
func (r *Router) healthCheck(c *fiber.Ctx) error {
	storage := "ok"
	if r.db != nil {
		sqlDB, err := r.db.DB()
		if err != nil || sqlDB.Ping() != nil {
			storage = "unreachable"
		}
	}

	payload := fiber.Map{
		"storage": storage,
		"backend": r.cfg.StorageBackend,
		"uptime":  time.Since(r.startedAt).Round(time.Second).String(),
	}
	if storage != "ok" {
		resp := models.ErrorResponse("Storage is unreachable")
		resp.Data = payload
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(models.SuccessResponse("API is healthy", payload))
}
