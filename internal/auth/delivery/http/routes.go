package http

import (
	"github.com/gin-gonic/gin"

	"nurse-manager/internal/middleware"
	"nurse-manager/internal/model"
)

// RegisterRoutes maps the auth endpoints. Login and refresh are public.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/login", h.Login)
	rg.POST("/refresh", h.Refresh)
	rg.GET("/me", mw.Auth(), h.Me)
	rg.POST("/register", mw.Auth(), mw.RequireRole(model.RoleAdmin), h.Register)
}
