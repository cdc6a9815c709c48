// Package web maps domain and store errors onto HTTP responses so every
// handler reports failures the same way.
package web

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wellness/wellness/internal/domain/validation"
	"github.com/wellness/wellness/internal/platform/store"
)

// HTTPError converts an error from the service layer into an echo HTTPError.
// Validation violations keep their field and bound identifiers in the payload
// so clients can highlight the offending input.
func HTTPError(err error) *echo.HTTPError {
	var violation *validation.Violation
	if errors.As(err, &violation) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"error": violation.Message,
			"field": violation.Field,
			"bound": string(violation.Bound),
		})
	}

	switch {
	case errors.Is(err, store.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	case errors.Is(err, store.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	case errors.Is(err, store.ErrConstraint):
		return echo.NewHTTPError(http.StatusBadRequest, "could not save record")
	case errors.Is(err, store.ErrUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "service temporarily unavailable, try again")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
