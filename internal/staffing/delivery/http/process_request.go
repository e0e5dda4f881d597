package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nurse-manager/pkg/response"
)

// processDateQuery reads ?<key>=YYYY-MM-DD, defaulting to today.
func (h *handler) processDateQuery(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		now := h.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := response.ParseDate(raw)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return d, nil
}

type forecastReq struct {
	From time.Time
	Days int
}

func (h *handler) processForecastReq(c *gin.Context) (forecastReq, error) {
	var req forecastReq
	from, err := h.processDateQuery(c, "from")
	if err != nil {
		return req, err
	}
	req.From = from

	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return req, errInvalidDays
		}
		req.Days = days
	}
	return req, nil
}
