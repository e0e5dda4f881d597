package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/pkg/response"
	"nurse-manager/pkg/scope"
)

// List godoc
// @Summary     List calendar events
// @Description All events, newest event date first.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/v1/calendar [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.uc.List(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(events))
}

// Upcoming godoc
// @Summary     List upcoming calendar events
// @Description Events from now on, soonest first.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/v1/calendar/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	events, err := h.uc.Upcoming(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(events))
}

// Detail godoc
// @Summary     Get a calendar event
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Event ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendar/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ev, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(ev))
}

// Create godoc
// @Summary     Create a calendar event
// @Description Provide event_date (RFC 3339) or a relative when such as "tomorrow", "in 2 weeks" or "next friday".
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Event"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	ev, err := h.uc.Create(ctx, req.toInput(sc.UserID))
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newDetailResp(ev))
}

// Delete godoc
// @Summary     Delete a calendar event
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Event ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendar/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
