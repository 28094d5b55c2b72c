package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth/domain"
)

const (
	CtxPrincipal = "principal"
	CtxEmail     = "email"
)

// Principal extracts the verified principal from the Gin context.
// Returns nil for anonymous requests.
func Principal(c *gin.Context) *domain.Principal {
	v, ok := c.Get(CtxPrincipal)
	if !ok {
		return nil
	}
	p, _ := v.(*domain.Principal)
	return p
}

// UserEmail extracts the signed-in user's email from the Gin context.
// Empty for anonymous requests.
func UserEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxEmail))
}
