package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/streamvault/identity-api/internal/core/domain"
)

// statusResponse is the canonical envelope for all non-token responses.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the
//     client; login in particular never echoes collaborator error text.
//   - Renders a consistent JSON envelope: {"status":"error","message":...}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, statusResponse{Status: "error", Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Store-level creation failure carries its validation reasons.
	var ce *domain.CreationError
	if errors.As(err, &ce) {
		return http.StatusInternalServerError, ce.Error()
	}

	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "user already in the database"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid input"
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserNotFound):
		// One refusal for wrong password, unknown user, and inactive
		// account alike.
		return http.StatusUnauthorized, "not authorized"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
