package http

import (
	"errors"
	"net/http"

	"nurse-manager/internal/copilot"
	pkgErrors "nurse-manager/pkg/errors"
)

var errInvalidID = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid conversation id")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, copilot.ErrPromptRequired):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, copilot.ErrConversationNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
