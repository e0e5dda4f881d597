package http

import (
	"errors"
	"net/http"

	"nurse-manager/internal/staffing"
	pkgErrors "nurse-manager/pkg/errors"
)

var (
	errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	errInvalidDays = pkgErrors.NewHTTPError(http.StatusBadRequest, "days must be a number")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, staffing.ErrDateOutsideSchedule),
		errors.Is(err, staffing.ErrInvalidForecastDays):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, staffing.ErrReportNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
