package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the latest snapshot.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) latest(c *gin.Context) {
	snap, err := h.store.Latest(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "stats unavailable"})
		return
	}
	if snap == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": snap})
}

// Register attaches the stats route to the given API group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/stats", h.latest)
}
