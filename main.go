package main

import (
	"log"

	"github.com/ILoveTech2001/JALAI-2/config"
	"github.com/ILoveTech2001/JALAI-2/internal/ws"
	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/ILoveTech2001/JALAI-2/routes"
	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	var (
		db    *gorm.DB
		repos *repository.Repositories
	)

	switch cfg.StorageBackend {
	case config.StorageMemory:
		log.Println("Using in-memory storage, data will not survive a restart")
		repos = repository.NewMemoryRepositories()
	case config.StorageMySQL:
		var err error
		db, err = utils.InitDatabase(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := config.Migrate(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		repos = repository.NewGormRepositories(db)
	default:
		log.Fatalf("Unknown storage backend %q", cfg.StorageBackend)
	}

	config.SeedAdmin(repos, cfg)
	config.SeedCategories(repos)
	if cfg.StorageBackend == config.StorageMemory {
		config.SeedDemoData(repos)
	}

	hub := ws.NewHub()
	go hub.Run()

	app := fiber.New(fiber.Config{
		AppName:      "JALAI Backend",
		ServerHeader: "JALAI Server/1.0",
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(cfg.Env),
	})

	middleware.SetupMiddleware(app, cfg)

	router := routes.NewRouter(cfg, repos, db, hub)
	router.SetupRoutes(app)

	middleware.SetupNotFoundHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.Host, cfg.AppPort)

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
