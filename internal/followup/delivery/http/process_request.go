package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "nurse-manager/pkg/errors"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	return req, nil
}

// processUpdateReq binds the update body and the id URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := parseID(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(400, err.Error())
	}
	req.ID = id
	return req, nil
}

// processCompleteReq binds the optional notes body and the id URI param.
func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	var req completeReq
	id, err := parseID(c)
	if err != nil {
		return req, err
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, pkgErrors.NewHTTPError(400, err.Error())
		}
	}
	req.ID = id
	return req, nil
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
