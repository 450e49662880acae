package handlers

import (
	"errors"
	"time"

	"github.com/ILoveTech2001/JALAI-2/config"
	"github.com/ILoveTech2001/JALAI-2/middleware"
	"github.com/ILoveTech2001/JALAI-2/models"
	"github.com/ILoveTech2001/JALAI-2/repository"
	"github.com/ILoveTech2001/JALAI-2/utils"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	users      repository.UserRepository
	tokens     repository.RefreshTokenRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthHandler(repos *repository.Repositories, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		users:      repos.Users,
		tokens:     repos.RefreshTokens,
		secret:     cfg.JWTSecret,
		accessTTL:  cfg.JWTAccessExpiry,
		refreshTTL: cfg.JWTRefreshExpiry,
	}
}

// RegisterRequest defines the payload for client registration
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"max=50"`
	Phone     string `json:"phone" validate:"max=20"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// issueTokens signs an access/refresh pair and persists the refresh jti
func (h *AuthHandler) issueTokens(user *models.User) (accessToken, refreshToken string, err error) {
	accessToken, err = utils.GenerateAccessToken(user.ID, string(user.Role), h.secret, h.accessTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, jti, expiresAt, err := utils.GenerateRefreshToken(user.ID, h.secret, h.refreshTTL)
	if err != nil {
		return "", "", err
	}
	err = h.tokens.Create(&models.RefreshToken{
		ID:        jti,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// Register - POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      models.RoleClient,
		IsActive:  true,
	}
	if err := h.users.Create(&user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return badRequest(c, "Email already in use")
		}
		return err
	}

	accessToken, refreshToken, err := h.issueTokens(&user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"message":      "Registration successful",
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"data":         fiber.Map{"user": user},
	})
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	user, err := h.users.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
	}
	if !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Account is deactivated"))
	}

	accessToken, refreshToken, err := h.issueTokens(user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Login successful",
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"data":         fiber.Map{"user": user},
	})
}

// Refresh - POST /api/auth/refresh
// Rotates the refresh token: the presented jti is revoked and a new pair
// is issued.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RefreshToken == "" {
		return badRequest(c, "Refresh token is required")
	}

	claims, err := utils.ParseToken(req.RefreshToken, h.secret)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid or expired token"))
	}
	if utils.ClaimString(claims, "type") != utils.TokenTypeRefresh {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token type"))
	}

	stored, err := h.tokens.FindByID(utils.ClaimString(claims, "jti"))
	if err != nil || !stored.Usable(time.Now()) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Refresh token is no longer valid"))
	}

	user, err := h.users.FindByID(stored.UserID)
	if err != nil || !user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Account is not available"))
	}

	if err := h.tokens.Revoke(stored.ID); err != nil {
		return err
	}
	accessToken, refreshToken, err := h.issueTokens(user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// Logout - POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err == nil && req.RefreshToken != "" {
		if claims, err := utils.ParseToken(req.RefreshToken, h.secret); err == nil {
			if jti := utils.ClaimString(claims, "jti"); jti != "" {
				_ = h.tokens.Revoke(jti)
			}
		}
	}
	return c.JSON(models.SuccessResponse("Logged out successfully", nil))
}

// Me - GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(models.SuccessResponse("", fiber.Map{"user": user}))
}
