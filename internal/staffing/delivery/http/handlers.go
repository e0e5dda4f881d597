package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/pkg/response"
)

// Snapshot godoc
// @Summary     Staffing snapshot
// @Tags        Staffing
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} snapshotResp
// @Router      /api/v1/staffing [GET]
func (h *handler) Snapshot(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Snapshot(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Snapshot: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSnapshotResp(out))
}

// Burnout godoc
// @Summary     Staff at high burnout risk
// @Tags        Staffing
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} burnoutResp
// @Router      /api/v1/staffing/burnout [GET]
func (h *handler) Burnout(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Burnout(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Burnout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBurnoutResp(out))
}

// Schedule godoc
// @Summary     Staffing of one day
// @Description Scheduled nurses, per-unit breakdown and shortages. Defaults to today.
// @Tags        Staffing
// @Produce     json
// @Security    BearerAuth
// @Param       date query string false "Date (YYYY-MM-DD)"
// @Success     200 {object} dayScheduleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/staffing/schedule [GET]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	date, err := h.processDateQuery(c, "date")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.DaySchedule(ctx, date)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayScheduleResp(out))
}

// Understaffed godoc
// @Summary     Understaffed shifts of the scheduled month
// @Tags        Staffing
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} understaffedResp
// @Router      /api/v1/staffing/understaffed [GET]
func (h *handler) Understaffed(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Understaffed(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Understaffed: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUnderstaffedResp(out))
}

// Forecast godoc
// @Summary     Staffing forecast
// @Tags        Staffing
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Start date (YYYY-MM-DD), defaults to today"
// @Param       days query int    false "Number of days (default 5)"
// @Success     200 {object} forecastResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/staffing/forecast [GET]
func (h *handler) Forecast(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processForecastReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Forecast(ctx, req.From, req.Days)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newForecastResp(out))
}

// Compliance godoc
// @Summary     Compliance report summary
// @Tags        Compliance
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} complianceResp
// @Router      /api/v1/compliance [GET]
func (h *handler) Compliance(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Compliance(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newComplianceResp(out))
}
