package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNoItemsSelected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrQueueEmpty), errors.Is(err, services.ErrHistoryEmpty):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error, fallback string) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = fallback
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// errorHandler renders echo errors (routing, binding, request validation) in the
// same shape as handler errors.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, Error{Code: code, Message: message})
}
