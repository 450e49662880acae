package middleware

import (
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/gofiber/fiber/v2"
)

const userLocalKey = "user"

// Authenticate verifies the bearer token, resolves the acting user and
// stashes it in the request locals. Every failure is terminal 401.
func Authenticate(users repository.UserRepository, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := utils.ExtractBearerToken(c.Get("Authorization"))
		if tokenString == "" {
			return unauthorized(c, "Access token required")
		}

		claims, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		if utils.ClaimString(claims, "type") != utils.TokenTypeAccess {
			return unauthorized(c, "Invalid token type")
		}

		user, err := users.FindByID(utils.ClaimString(claims, "user_id"))
		if err != nil {
			return unauthorized(c, "User not found")
		}
		if !user.IsActive {
			return unauthorized(c, "Account is deactivated")
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// OptionalAuthenticate attaches the user when a valid access token is
// presented but lets the request through either way.
func OptionalAuthenticate(users repository.UserRepository, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := utils.ExtractBearerToken(c.Get("Authorization"))
		if tokenString == "" {
			return c.Next()
		}
		claims, err := utils.ParseToken(tokenString, secret)
		if err != nil || utils.ClaimString(claims, "type") != utils.TokenTypeAccess {
			return c.Next()
		}
		user, err := users.FindByID(utils.ClaimString(claims, "user_id"))
		if err == nil && user.IsActive {
			c.Locals(userLocalKey, user)
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil before Authenticate
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}

// Authorize rejects with 403 unless the actor's role is in the allow-list
func Authorize(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return unauthorized(c, "Authentication required")
		}
		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return forbidden(c, "Insufficient permissions")
	}
}

// OwnerOrAdmin allows admins through and otherwise requires the route
// parameter to match the actor's id.
func OwnerOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return unauthorized(c, "Authentication required")
		}
		if user.Role == models.RoleAdmin {
			return c.Next()
		}
		if c.Params(param) != user.ID {
			return forbidden(c, "Access denied")
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse(message))
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(message))
}
