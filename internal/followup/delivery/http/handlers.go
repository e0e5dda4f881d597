package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/internal/followup"
	"nurse-manager/pkg/response"
	"nurse-manager/pkg/scope"
)

// List godoc
// @Summary     List pending follow-up tasks
// @Description Returns pending tasks. Falls back to roster sample tasks when none are stored.
// @Tags        Followups
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} pendingResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/followups [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Pending(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Pending: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPendingResp(output))
}

// Create godoc
// @Summary     Create a follow-up task
// @Tags        Followups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task data"
// @Success     201 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/followups [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newDetailResp(task))
}

// Detail godoc
// @Summary     Get follow-up task detail
// @Tags        Followups
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/followups/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(task))
}

// Update godoc
// @Summary     Update a follow-up task
// @Description Partial update of priority, status (pending/overdue) and assignee.
// @Tags        Followups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already completed"
// @Router      /api/v1/followups/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	task, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(task))
}

// Complete godoc
// @Summary     Mark a follow-up task as complete
// @Tags        Followups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int         true  "Task ID"
// @Param       body body completeReq false "Completion notes"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already completed"
// @Router      /api/v1/followups/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCompleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	task, err := h.uc.Complete(ctx, followup.CompleteTaskInput{
		ID:          req.ID,
		Notes:       req.Notes,
		CompletedBy: sc.UserID,
	})
	if err != nil {
		h.l.Warnf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompleteResp(task))
}
