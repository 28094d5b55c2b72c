package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/braetspilscafeen/go-catalog-backend/internal/auth/domain"
)

const usersCollection = "Users"

// ProfileRepo persists user profiles in the Firestore "Users"
// collection, keyed by email.
type ProfileRepo struct {
	client *firestore.Client
}

func NewProfileRepo(client *firestore.Client) *ProfileRepo {
	return &ProfileRepo{client: client}
}

// GetByEmail fetches a profile, or domain.ErrProfileNotFound.
func (r *ProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	snap, err := r.client.Collection(usersCollection).Doc(email).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile %q: %w", email, err)
	}

	var p domain.Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, fmt.Errorf("decode profile %q: %w", email, err)
	}
	p.Email = snap.Ref.ID
	return &p, nil
}

// Create writes a profile keyed by its email. Set overwrites by key, so
// two resolutions racing on first sign-in converge on one identical
// document instead of duplicating.
func (r *ProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	if p.Email == "" {
		return fmt.Errorf("profile email is required")
	}
	if _, err := r.client.Collection(usersCollection).Doc(p.Email).Set(ctx, p); err != nil {
		return fmt.Errorf("create profile %q: %w", p.Email, err)
	}
	return nil
}
