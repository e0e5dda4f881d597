package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// All routes require an authenticated user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())
	{
		rg.GET("", h.List)
		rg.POST("", h.Create)
		rg.GET("/:id", h.Detail)
		rg.PATCH("/:id", h.Update)
		rg.POST("/:id/complete", h.Complete)
	}
}
