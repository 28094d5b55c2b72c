package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth/domain"
)

// ProfileStore is the Users collection boundary as the resolver consumes
// it. Implemented by repository.ProfileRepo.
type ProfileStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
}

// ProfileCache sits in front of the store. Implemented by
// repository.ProfileCache; may be nil to disable caching.
type ProfileCache interface {
	Get(ctx context.Context, email string) (*domain.Profile, error)
	Set(ctx context.Context, p *domain.Profile) error
	Invalidate(ctx context.Context, email string) error
}

// Resolver turns a verified principal into our own profile record,
// lazily creating it with IsAdmin=false on first sign-in.
type Resolver struct {
	store ProfileStore
	cache ProfileCache
	now   func() time.Time
}

func NewResolver(store ProfileStore, cache ProfileCache) *Resolver {
	return &Resolver{store: store, cache: cache, now: time.Now}
}

// Resolve looks up the profile keyed by the principal's email, creating
// it if absent. A nil principal or one without an email resolves to
// (nil, nil). Create uses overwrite-by-key semantics, so the racing
// double-resolution on first sign-in converges rather than duplicating.
func (r *Resolver) Resolve(ctx context.Context, principal *domain.Principal) (*domain.Profile, error) {
	if principal == nil || principal.Email == "" {
		return nil, nil
	}

	if r.cache != nil {
		if p, err := r.cache.Get(ctx, principal.Email); err != nil {
			// A cache failure is a miss, not an auth failure.
			log.Printf("profile cache get %s: %v", principal.Email, err)
		} else if p != nil {
			return p, nil
		}
	}

	p, err := r.store.GetByEmail(ctx, principal.Email)
	if errors.Is(err, domain.ErrProfileNotFound) {
		p = newProfile(principal, r.now())
		if err := r.store.Create(ctx, p); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, p); err != nil {
			log.Printf("profile cache set %s: %v", p.Email, err)
		}
	}

	return p, nil
}

// Invalidate drops the cached copy so the next Resolve re-reads the
// store. Used after an admin flag is flipped out of band.
func (r *Resolver) Invalidate(ctx context.Context, email string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Invalidate(ctx, email); err != nil {
		log.Printf("profile cache invalidate %s: %v", email, err)
	}
}

func newProfile(principal *domain.Principal, now time.Time) *domain.Profile {
	name := principal.Name
	if name == "" {
		name = "Unknown"
	}
	return &domain.Profile{
		Email:     principal.Email,
		Name:      name,
		PhotoURL:  principal.PhotoURL,
		UID:       principal.UID,
		IsAdmin:   false,
		CreatedAt: now.UTC(),
	}
}
