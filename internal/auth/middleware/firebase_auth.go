package middleware

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth"
	"github.com/braetspilscafeen/go-catalog-backend/internal/auth/domain"
)

// TokenVerifier is the slice of the Firebase Auth client the middleware
// needs. Implemented by *auth.Client.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// RequireUser validates the Firebase ID token and stores the verified
// principal in the context. Requests without a valid token get 401.
func RequireUser(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}

		decoded, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		setPrincipal(c, decoded)
		c.Next()
	}
}

// OptionalUser stores the principal when a valid token is present and
// falls through anonymously otherwise. Used on public listing routes,
// where favorite state is only rendered for signed-in users.
func OptionalUser(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if decoded, err := verifier.VerifyIDToken(c.Request.Context(), token); err == nil {
				setPrincipal(c, decoded)
			}
		}
		c.Next()
	}
}

func setPrincipal(c *gin.Context, token *fbauth.Token) {
	p := &domain.Principal{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		p.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		p.Name = name
	}
	if pic, ok := token.Claims["picture"].(string); ok {
		p.PhotoURL = pic
	}

	c.Set(auth.CtxPrincipal, p)
	c.Set(auth.CtxEmail, p.Email)
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
