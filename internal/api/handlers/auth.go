package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"enhancives/internal/api/dto"
	"enhancives/internal/api/services"
	"enhancives/internal/repository"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(store repository.Store, jwtKey string) *AuthHandler {
	return &AuthHandler{
		authService: services.NewAuthService(store.Users(), jwtKey),
	}
}

// SignUp godoc
// @Summary Register a new user
// @Description Create an account and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AuthRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req dto.AuthRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}

	user, token, err := h.authService.SignUp(c.Request().Context(), services.SignUpInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case services.ErrInvalidInput:
			return ErrBadRequest(c, "invalid username or password format")
		case services.ErrUserAlreadyExists:
			return ErrConflict(c, "username already exists")
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusOK, dto.AuthResponseFromDomain(user, token))
}

// SignIn godoc
// @Summary Sign in
// @Description Authenticate and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AuthRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req dto.AuthRequest
	if err := c.Bind(&req); err != nil {
		return ErrBadRequest(c, "invalid request body")
	}

	user, token, err := h.authService.SignIn(c.Request().Context(), services.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case services.ErrInvalidInput:
			return ErrBadRequest(c, "invalid username or password format")
		case services.ErrInvalidCredentials:
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		default:
			return ErrInternalServerError(c)
		}
	}

	return c.JSON(http.StatusOK, dto.AuthResponseFromDomain(user, token))
}
