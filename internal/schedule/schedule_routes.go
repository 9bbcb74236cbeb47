package schedule

import (
	"go-shiftdesk/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	schedules := r.Group("/schedules")
	schedules.Use(middleware.AuthMiddleware())
	{
		schedules.GET("", handler.GetMonth)
		schedules.GET("/summary", handler.ShiftSummary)
		schedules.POST("/generate", middleware.RBACAuthorize(rbacService, "schedule", "generate"), handler.Generate)
		schedules.PUT("/manual", middleware.RBACAuthorize(rbacService, "schedule", "update"), handler.SaveManual)
		schedules.DELETE("/manual/:employeeId", middleware.RBACAuthorize(rbacService, "schedule", "update"), handler.ResetEmployee)
		schedules.DELETE("/manual", middleware.RBACAuthorize(rbacService, "schedule", "delete"), handler.ResetAll)
	}
}
