package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "nurse-manager/pkg/errors"
	"nurse-manager/pkg/scope"
)

func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// userID returns the authenticated user, or the configured default.
func (h *handler) userID(c *gin.Context) int64 {
	if sc, ok := scope.GetScopeFromContext(c.Request.Context()); ok && sc.UserID > 0 {
		return sc.UserID
	}
	return h.defaultUserID
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
