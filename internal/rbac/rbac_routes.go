package rbac

import "github.com/gin-gonic/gin"

// Mounted at the root rather than under /api/v1: the enforce probe is an
// internal diagnostic surface, not part of the dashboard API.
func RegisterRoutes(r *gin.Engine, handler *Handler) {
	r.POST("/rbac/enforce", handler.Enforce)
}
