package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth"
	"github.com/braetspilscafeen/go-catalog-backend/internal/games/domain"
)

func (h *Handler) list(c *gin.Context) {
	grouped, err := h.svc.ListGrouped(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}

	groups := make([]cafeGroup, 0, len(domain.Cafes()))
	for _, cafe := range domain.Cafes() {
		groups = append(groups, cafeGroup{Cafe: string(cafe), Games: grouped[cafe]})
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "cafes": groups})
}

func (h *Handler) get(c *gin.Context) {
	g, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "game": g})
}

func (h *Handler) favorites(c *gin.Context) {
	email := auth.UserEmail(c)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	games, err := h.svc.ListFavorites(c.Request.Context(), email)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "games": games})
}

// toggleFavorite flips the caller's membership in the game's likedBy set
// and responds with the freshly re-fetched listing. The favorited flag
// tells the favorites view whether to keep or drop the card.
func (h *Handler) toggleFavorite(c *gin.Context) {
	email := auth.UserEmail(c)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	g, favorited, err := h.svc.ToggleFavorite(c.Request.Context(), c.Param("id"), email)
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "game": g, "favorited": favorited})
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), req.toGame())
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), c.Param("id"), req.fields()); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// storeError maps service errors onto HTTP statuses. Nothing propagates
// unhandled: a transient store failure surfaces as a typed 502 body the
// client can render inline.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrGameNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "game not found"})
	case errors.Is(err, domain.ErrInvalidGame):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "store unavailable"})
	}
}
