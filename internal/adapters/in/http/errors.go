package http

import (
	"errors"
	"net/http"

	"globaledge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError translates domain errors into HTTP responses. Validation
// failures and not-found lookups keep their messages; anything else is an
// internal error and the detail stays out of the response body.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeErrorWithStatus(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeErrorWithStatus(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return writeErrorWithStatus(ctx, http.StatusConflict, err.Error())
	default:
		return writeErrorWithStatus(ctx, http.StatusInternalServerError, "internal error")
	}
}

func writeErrorWithStatus(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
