package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/pkg/response"
)

// Send godoc
// @Summary     Send an email
// @Description Either text or html is required.
// @Tags        Email
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body sendReq true "Email"
// @Success     200 {object} resultResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Delivery failed"
// @Failure     503 {object} response.Resp "Email not configured"
// @Router      /api/v1/email/send [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindJSON[sendReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResultResp(res))
}

// ScheduleNotification godoc
// @Summary     Send a schedule update to staff
// @Tags        Email
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body scheduleNotificationReq true "Schedule notification"
// @Success     200 {object} resultResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/email/schedule-notification [POST]
func (h *handler) ScheduleNotification(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindJSON[scheduleNotificationReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.SendScheduleNotification(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResultResp(res))
}

// Alert godoc
// @Summary     Send a staff alert
// @Description alert_type is Critical, Important or Informational.
// @Tags        Email
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body alertReq true "Alert"
// @Success     200 {object} resultResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/email/alert [POST]
func (h *handler) Alert(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindJSON[alertReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.SendAlert(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResultResp(res))
}

// Batch godoc
// @Summary     Send one message to many staff members
// @Tags        Email
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body batchReq true "Batch"
// @Success     200 {object} resultResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/email/batch [POST]
func (h *handler) Batch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := bindJSON[batchReq](c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.SendBatch(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResultResp(res))
}
