package handlers

import (
	"net/http"

	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles signup and login
type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/login", h.Login)
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.CredentialsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Signup(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": res.User, "token": res.Token})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req models.CredentialsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": res.User, "token": res.Token})
}
