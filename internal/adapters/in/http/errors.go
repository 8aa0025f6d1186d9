package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	internalErrorMessage     = "internal server error"
	unauthorizedErrorMessage = "unauthorized"
)

// statusOf classifies err by the sentinel it wraps.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an Error body. 500 and 401 responses carry a
// fixed message and their cause is logged; every other status carries the
// error text.
func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	status := statusOf(err)
	message := err.Error()

	switch status {
	case http.StatusInternalServerError:
		logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = internalErrorMessage
	case http.StatusUnauthorized:
		logger.InfoContext(ctx.Request().Context(), "request denied",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = unauthorizedErrorMessage
	}
	return ctx.JSON(status, Error{Code: status, Message: message})
}

// errorHandler replaces echo's default so that routing errors (404, 405) and
// anything a middleware returns share the Error body.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			message := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
			if he.Code >= http.StatusInternalServerError {
				logger.ErrorContext(ctx.Request().Context(), "request failed", "error", err)
				message = internalErrorMessage
			}
			_ = ctx.JSON(he.Code, Error{Code: he.Code, Message: message})
			return
		}

		_ = writeError(ctx, logger, err)
	}
}
