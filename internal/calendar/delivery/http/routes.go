package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Auth())
	{
		rg.GET("", h.List)
		rg.GET("/upcoming", h.Upcoming)
		rg.GET("/:id", h.Detail)
		rg.POST("", h.Create)
		rg.DELETE("/:id", h.Delete)
	}
}
