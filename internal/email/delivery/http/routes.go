package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/internal/middleware"
	"nurse-manager/internal/model"
)

// RegisterRoutes maps the email endpoints. Sending is limited to managers and admins.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth(), mw.RequireRole(model.RoleManager, model.RoleAdmin))
	{
		rg.POST("/send", h.Send)
		rg.POST("/schedule-notification", h.ScheduleNotification)
		rg.POST("/alert", h.Alert)
		rg.POST("/batch", h.Batch)
	}
}
