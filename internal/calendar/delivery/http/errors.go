package http

import (
	"errors"
	"net/http"

	"nurse-manager/internal/calendar"
	pkgErrors "nurse-manager/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid event id")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, calendar.ErrTitleRequired),
		errors.Is(err, calendar.ErrDateRequired),
		errors.Is(err, calendar.ErrInvalidWhen),
		errors.Is(err, calendar.ErrInvalidPriority):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
