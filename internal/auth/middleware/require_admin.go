package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth"
	"github.com/braetspilscafeen/go-catalog-backend/internal/auth/domain"
)

// ProfileResolver is the slice of the resolver the admin guard needs.
type ProfileResolver interface {
	Resolve(ctx context.Context, principal *domain.Principal) (*domain.Profile, error)
}

// RequireAdmin resolves the caller's profile and only lets admins
// through. Non-admins get 404, not 403: the admin surface is
// indistinguishable from an absent route, mirroring a client that
// simply never registers the authoring page for regular users.
// Must run after RequireUser.
func RequireAdmin(resolver ProfileResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := auth.Principal(c)
		if principal == nil {
			notFound(c)
			return
		}

		profile, err := resolver.Resolve(c.Request.Context(), principal)
		if err != nil || profile == nil || !profile.IsAdmin {
			notFound(c)
			return
		}

		c.Next()
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	c.Abort()
}
