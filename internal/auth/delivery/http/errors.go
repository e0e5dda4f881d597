package http

import (
	"errors"
	"net/http"

	"nurse-manager/internal/auth"
	pkgErrors "nurse-manager/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidRefreshToken):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, auth.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, auth.ErrUsernameTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, auth.ErrInvalidRole),
		errors.Is(err, auth.ErrWeakPassword):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
