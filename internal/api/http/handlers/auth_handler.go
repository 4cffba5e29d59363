package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Spencer4792/jwt-pizza-service/internal/api/dto"
	"github.com/Spencer4792/jwt-pizza-service/internal/auth"
	"github.com/Spencer4792/jwt-pizza-service/internal/service"
)

// AuthHandler exposes the register/login/logout/update endpoints.
type AuthHandler struct {
	credentials *service.CredentialService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(credentials *service.CredentialService) *AuthHandler {
	return &AuthHandler{credentials: credentials}
}

// Register handles POST /api/auth.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, token, err := h.credentials.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{User: dto.NewUserResponse(user), Token: token})
}

// Login handles PUT /api/auth.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	user, token, err := h.credentials.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{User: dto.NewUserResponse(user), Token: token})
}

// Logout handles DELETE /api/auth. The route requires authentication; the
// deactivation itself is idempotent.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.credentials.Logout(c.UserContext(), auth.TokenFromContext(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "logout successful"})
}

// UpdateUser handles PUT /api/auth/:userId. Self or admin only.
func (h *AuthHandler) UpdateUser(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	principal := auth.PrincipalFromContext(c)
	user, err := h.credentials.Update(c.UserContext(), principal, c.Params("userId"), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewUserResponse(user))
}
