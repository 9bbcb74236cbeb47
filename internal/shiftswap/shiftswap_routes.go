package shiftswap

import (
	"go-shiftdesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	swaps := r.Group("/shift-swaps")
	swaps.Use(middleware.AuthMiddleware())
	{
		swaps.GET("", handler.GetAll)
		swaps.GET("/:id", handler.GetByID)
		swaps.POST("/preview", handler.Preview)
		swaps.POST("", middleware.Idempotency(rdb), handler.Create)
		swaps.POST("/:id/respond", handler.PartnerRespond)
		swaps.POST("/:id/approve", handler.Approve)
		swaps.POST("/:id/reject", handler.Reject)
		swaps.POST("/:id/cancel", handler.Cancel)
		swaps.DELETE("/:id", middleware.RoleMiddleware("admin"), handler.Delete)
		swaps.DELETE("", middleware.RoleMiddleware("admin"), handler.DeleteAll)
	}
}
