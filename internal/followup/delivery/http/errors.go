package http

import (
	"errors"
	"net/http"

	"nurse-manager/internal/followup"
	pkgErrors "nurse-manager/pkg/errors"
)

var (
	errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task id")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, followup.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, followup.ErrTaskAlreadyCompleted):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, followup.ErrInvalidPriority),
		errors.Is(err, followup.ErrInvalidStatus),
		errors.Is(err, followup.ErrDescriptionRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
