package middleware

import (
	"errors"
	"runtime/debug"
	"strings"

	"github.com/ILoveTech2001/JALAI-2/config"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
)

// SetupMiddleware configures all application middleware
func SetupMiddleware(app *fiber.App, cfg *config.Config) {
	// Request ID middleware - adds unique ID to each request
	app.Use(requestid.New())

	// Logger middleware - logs all requests
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} - ${ip} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))

	// Recover middleware - recovers from panics
	app.Use(recover.New(recover.Config{
		EnableStackTrace: cfg.Env != "production",
	}))

	// Security middleware
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.Join(cfg.CORSAllowOrigins, ","),
		AllowMethods:  "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders: "X-Request-ID",
		MaxAge:        86400, // 24 hours
	}))

	// Response compression
	app.Use(compress.New())

	// Per-IP rate limit on the API prefix
	app.Use("/api", limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: cfg.RateLimitWindow,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(
				models.ErrorResponse("Too many requests from this IP, please try again later"))
		},
	}))
}

// SetupNotFoundHandler registers the trailing 404 handler; call it after
// all routes are mounted.
func SetupNotFoundHandler(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(
			models.ErrorResponse("The requested resource was not found"))
	})
}

// ErrorHandler normalizes storage and token errors into the response
// envelope. Outside production the stack is included for 500s.
func ErrorHandler(env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		msg := "Internal server error"

		switch {
		case errors.Is(err, repository.ErrNotFound):
			code = fiber.StatusNotFound
			msg = "Resource not found"
		case errors.Is(err, repository.ErrDuplicate):
			code = fiber.StatusBadRequest
			msg = "Duplicate entry"
		case errors.Is(err, repository.ErrInvalidReference):
			code = fiber.StatusBadRequest
			msg = "Referenced record does not exist"
		case errors.Is(err, jwt.ErrTokenExpired):
			code = fiber.StatusUnauthorized
			msg = "Token expired"
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrSignatureInvalid),
			errors.Is(err, jwt.ErrTokenInvalidClaims):
			code = fiber.StatusUnauthorized
			msg = "Invalid token"
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				msg = fiberErr.Message
			}
		}

		response := models.ErrorResponse(msg)
		if env != "production" && code == fiber.StatusInternalServerError {
			response.Stack = err.Error() + "\n" + string(debug.Stack())
		}
		return c.Status(code).JSON(response)
	}
}
