package http

import (
	"errors"
	"net/http"

	"nurse-manager/internal/email"
	pkgErrors "nurse-manager/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, email.ErrMissingFields),
		errors.Is(err, email.ErrInvalidAlertType):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, email.ErrNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, email.ErrDeliveryFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
