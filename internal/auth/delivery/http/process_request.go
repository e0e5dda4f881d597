package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "nurse-manager/pkg/errors"
	"nurse-manager/pkg/scope"
)

func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

func (h *handler) processRefreshReq(c *gin.Context) (refreshReq, error) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

func (h *handler) currentUser(c *gin.Context) (scope.Scope, error) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok {
		return scope.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}
