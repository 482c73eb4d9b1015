package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/potluck/recipebook/internal/httperr"
	"github.com/potluck/recipebook/internal/middleware"
	"github.com/potluck/recipebook/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Invalid request body"})
	}

	creds, err := h.auth.SignUp(c.Context(), req.Email, req.Password)
	if err != nil {
		e := httperr.From(err)
		return c.Status(e.Status).JSON(e)
	}
	return c.JSON(creds)
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Invalid request body"})
	}

	creds, err := h.auth.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		e := httperr.From(err)
		return c.Status(e.Status).JSON(e)
	}
	return c.JSON(creds)
}

// RefreshToken issues a new token for the already-verified caller. It
// sits behind RequireAuth, so reaching it means the old token still
// checks out and the user still exists.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	token, err := h.auth.Refresh(c.Context(), middleware.UserID(c))
	if err != nil {
		e := httperr.From(err)
		return c.Status(e.Status).JSON(e)
	}
	return c.JSON(fiber.Map{"token": token})
}
