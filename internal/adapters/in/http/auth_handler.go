package http

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"dispatch/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

var (
	errMissingToken       = errors.New("missing bearer token")
	errInvalidToken       = errors.New("invalid or expired token")
	errInvalidCredentials = errors.New("invalid credentials")
)

// AuthHandler issues bearer tokens against the configured administrator
// credentials.
type AuthHandler struct {
	tokens   *auth.TokenService
	username string
	password string
}

// NewAuthHandler creates the login handler.
func NewAuthHandler(tokens *auth.TokenService, username, password string) AuthHandler {
	return AuthHandler{
		tokens:   tokens,
		username: username,
		password: password,
	}
}

// Login handles POST /api/v1/auth/login. Credential comparison is constant
// time.
func (h AuthHandler) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, err)
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		return writeErrorStatus(ctx, http.StatusUnauthorized, errInvalidCredentials)
	}

	token, err := h.tokens.Issue(req.Username)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}
