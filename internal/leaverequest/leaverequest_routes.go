package leaverequest

import (
	"go-shiftdesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	leaves := r.Group("/leave-requests")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetByID)
		leaves.POST("", middleware.Idempotency(rdb), handler.Create)
		leaves.POST("/:id/approve", handler.Approve)
		leaves.POST("/:id/reject", handler.Reject)
		leaves.POST("/:id/cancel", handler.Cancel)
		leaves.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.Delete)
		leaves.DELETE("", middleware.RoleMiddleware("admin"), handler.DeleteAll)
	}
}
