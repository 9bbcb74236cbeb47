package store

import (
	"go-shiftdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	stores := r.Group("/stores")
	stores.Use(middleware.AuthMiddleware())
	{
		stores.GET("", handler.GetAll)
		stores.GET("/:id", handler.GetByID)
		stores.POST("", middleware.RoleMiddleware("admin"), handler.Create)
		stores.PUT("/:id", middleware.RoleMiddleware("admin"), handler.Update)
	}
}
