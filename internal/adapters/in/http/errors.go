package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error to its HTTP representation. Error
// kinds decide the status code; unrecognized errors are reported as a
// generic 500 so storage internals never leak to the caller.
func writeError(ctx echo.Context, err error) error {
	var stockErr product.InsufficientStockError

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		return errorResponse(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.As(err, &stockErr):
		return errorResponse(ctx, http.StatusBadRequest, stockErr.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
