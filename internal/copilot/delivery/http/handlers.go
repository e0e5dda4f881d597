package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/pkg/response"
)

// Ask godoc
// @Summary     Ask the copilot
// @Description Completes a follow-up task when the prompt asks for it, otherwise answers
// @Description from canned responses or the configured model. Reminders found in the
// @Description exchange are added to the calendar.
// @Tags        Copilot
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body askReq true "Prompt"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Conversation not found"
// @Router      /api/v1/copilot [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Ask(ctx, req.toInput(h.userID(c)))
	if err != nil {
		h.l.Warnf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAskResp(out))
}

// Conversations godoc
// @Summary     Recent copilot conversations
// @Tags        Copilot
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Router      /api/v1/copilot/conversations [GET]
func (h *handler) Conversations(c *gin.Context) {
	ctx := c.Request.Context()

	convs, err := h.uc.Conversations(ctx, h.userID(c))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(convs))
}

// Conversation godoc
// @Summary     Conversation messages
// @Tags        Copilot
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Conversation ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Invalid ID"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/copilot/conversations/{id} [GET]
func (h *handler) Conversation(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Conversation(ctx, h.userID(c), id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(out))
}
