package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/streamvault/identity-api/internal/api/metrics"
	"github.com/streamvault/identity-api/internal/core/domain"
	"github.com/streamvault/identity-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type loginResponse struct {
	Token   string    `json:"token"`
	ValidTo time.Time `json:"validTo"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	req, err := bindRegister(c)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("user", "rejected").Inc()
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("user", registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("user", "created").Inc()
	return c.JSON(http.StatusOK, statusResponse{
		Status:  "ok",
		Message: fmt.Sprintf("user %s created successfully", user.Username),
	})
}

// RegisterAdmin creates a new user account with the Admin role.
//
// @Summary      Register a new administrative user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /auth/register-admin [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	req, err := bindRegister(c)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("admin", "rejected").Inc()
		return err
	}

	user, err := h.authService.RegisterAdmin(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		var ce *domain.CreationError
		if errors.As(err, &ce) && ce.Partial {
			metrics.RoleAssignmentFailuresTotal.Inc()
		}
		metrics.RegistrationsTotal.WithLabelValues("admin", registerResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("admin", "created").Inc()
	return c.JSON(http.StatusOK, statusResponse{
		Status:  "ok",
		Message: fmt.Sprintf("user %s created successfully", user.Username),
	})
}

// Login authenticates a user and returns a signed access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{
		Token:   token.Value,
		ValidTo: token.ValidTo,
	})
}

func bindRegister(c echo.Context) (*registerRequest, error) {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}

func registerResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return "duplicate"
	case errors.Is(err, domain.ErrInvalidInput):
		return "rejected"
	default:
		return "error"
	}
}
