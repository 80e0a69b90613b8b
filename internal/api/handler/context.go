package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// identityResponse is the payload returned by the Me endpoint.
type identityResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// ctxIdentity extracts the claims injected by the Auth middleware. A missing
// username means the middleware did not run; reject rather than serve an
// anonymous identity.
func ctxIdentity(c echo.Context) (identityResponse, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return identityResponse{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	roles, _ := c.Get("roles").([]string)
	return identityResponse{Username: username, Roles: roles}, nil
}

// Me returns the identity asserted by the presented token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  statusResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identity)
}
