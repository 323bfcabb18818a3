package http

import (
	"errors"
	"net/http"

	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a core-layer error to the wire contract: missing objects
// become 404, conflicts and rejected transitions become 409, validation
// failures become 400, anything else is a 500 with a generic message so
// internals do not leak.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeErrorStatus(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrInvalidTransition):
		return writeErrorStatus(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return writeErrorStatus(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func writeErrorStatus(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// writeBadRequest reports a malformed or invalid request payload.
func writeBadRequest(ctx echo.Context, err error) error {
	return writeErrorStatus(ctx, http.StatusBadRequest, err)
}
