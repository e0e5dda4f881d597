package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/internal/middleware"
)

// RegisterRoutes mounts the staffing and compliance endpoints on the API group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	staff := rg.Group("/staffing", mw.Auth())
	{
		staff.GET("", h.Snapshot)
		staff.GET("/burnout", h.Burnout)
		staff.GET("/schedule", h.Schedule)
		staff.GET("/understaffed", h.Understaffed)
		staff.GET("/forecast", h.Forecast)
	}

	rg.GET("/compliance", mw.Auth(), h.Compliance)
}
