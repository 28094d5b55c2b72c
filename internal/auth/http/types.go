package http

import "github.com/braetspilscafeen/go-catalog-backend/internal/auth/service"

// Handler bundles the dependencies for auth HTTP endpoints.
type Handler struct {
	resolver *service.Resolver
}

func New(resolver *service.Resolver) *Handler {
	return &Handler{resolver: resolver}
}
