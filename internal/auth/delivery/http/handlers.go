package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/pkg/response"
)

// Login godoc
// @Summary     Log in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} tokenResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTokenResp(out))
}

// Refresh godoc
// @Summary     Exchange a refresh token for a new token pair
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body refreshReq true "Refresh token"
// @Success     200 {object} tokenResp
// @Failure     401 {object} response.Resp "Invalid refresh token"
// @Router      /api/v1/auth/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRefreshReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTokenResp(out))
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.currentUser(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	user, err := h.uc.Me(ctx, sc.UserID)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(user))
}

// Register godoc
// @Summary     Create a user account
// @Description Admin only. Role defaults to nurse.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body registerReq true "Account"
// @Success     201 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     409 {object} response.Resp "Username taken"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	user, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, newUserResp(user))
}
