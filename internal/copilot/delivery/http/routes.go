package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/internal/middleware"
)

// RegisterRoutes maps the copilot endpoints. All routes require an authenticated user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())
	{
		rg.POST("", h.Ask)
		rg.GET("/conversations", h.Conversations)
		rg.GET("/conversations/:id", h.Conversation)
	}
}
