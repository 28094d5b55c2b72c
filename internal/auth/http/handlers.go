package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth"
)

// Sync is the backend half of login: the SPA completes the popup flow,
// then posts its ID token here. The verified principal is resolved into
// a profile, created on first sign-in, and returned together with the
// admin flag the client uses to register the authoring route.
func (h *Handler) Sync(c *gin.Context) {
	principal := auth.Principal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	profile, err := h.resolver.Resolve(c.Request.Context(), principal)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "profile resolution failed"})
		return
	}
	if profile == nil {
		// Token verified but carries no email; nothing to key a profile on.
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "token has no email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": profile, "isAdmin": profile.IsAdmin})
}

// Profile returns the current user's profile.
func (h *Handler) Profile(c *gin.Context) {
	principal := auth.Principal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not authenticated"})
		return
	}

	profile, err := h.resolver.Resolve(c.Request.Context(), principal)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "profile resolution failed"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": profile, "isAdmin": profile.IsAdmin})
}
