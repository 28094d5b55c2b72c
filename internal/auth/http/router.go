package http

import "github.com/gin-gonic/gin"

// Register attaches auth routes to the given router group. Callers wrap
// the group with RequireUser.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/sync", h.Sync)
	rg.GET("/profile", h.Profile)
}
