package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "nurse-manager/pkg/errors"
)

// bindJSON binds the request body into req, mapping failures to 400.
func bindJSON[T any](c *gin.Context) (T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}
