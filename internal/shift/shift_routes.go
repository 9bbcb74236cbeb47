package shift

import (
	"go-shiftdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware())
	{
		shifts.GET("", handler.GetAll)
		shifts.GET("/:id", handler.GetByID)
		shifts.POST("", middleware.RoleMiddleware("admin", "ac"), handler.Create)
		shifts.PUT("/:id", middleware.RoleMiddleware("admin", "ac"), handler.Update)
		shifts.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.Delete)
	}
}
