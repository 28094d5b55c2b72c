package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/braetspilscafeen/go-catalog-backend/internal/games/domain"
)

const gamesCollection = "Games"

// GameRepo persists game listings in the Firestore "Games" collection.
// Documents are keyed by store-assigned IDs.
type GameRepo struct {
	client *firestore.Client
}

func NewGameRepo(client *firestore.Client) *GameRepo {
	return &GameRepo{client: client}
}

// List fetches every listing in the collection. Order is unspecified.
func (r *GameRepo) List(ctx context.Context) ([]*domain.Game, error) {
	iter := r.client.Collection(gamesCollection).Documents(ctx)
	defer iter.Stop()

	games := []*domain.Game{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list games: %w", err)
		}

		g, err := docToGame(snap)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, nil
}

// GetByID fetches one listing, or domain.ErrGameNotFound.
func (r *GameRepo) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	snap, err := r.client.Collection(gamesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrGameNotFound
		}
		return nil, fmt.Errorf("get game %q: %w", id, err)
	}
	return docToGame(snap)
}

// Create stores a new listing and returns the store-assigned ID.
func (r *GameRepo) Create(ctx context.Context, g *domain.Game) (string, error) {
	ref, _, err := r.client.Collection(gamesCollection).Add(ctx, g)
	if err != nil {
		return "", fmt.Errorf("create game: %w", err)
	}
	return ref.ID, nil
}

// Update merges fields into an existing listing. Fields absent from the
// map are left untouched.
func (r *GameRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	_, err := r.client.Collection(gamesCollection).Doc(id).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrGameNotFound
		}
		return fmt.Errorf("update game %q: %w", id, err)
	}
	return nil
}

// Delete removes a listing unconditionally. Deleting an absent document
// is not an error in Firestore, so callers see delete as idempotent.
func (r *GameRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(gamesCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete game %q: %w", id, err)
	}
	return nil
}

// AddFavorite unions email into the listing's likedBy set. Adding an
// already-present email is a no-op server-side.
func (r *GameRepo) AddFavorite(ctx context.Context, id, email string) error {
	_, err := r.client.Collection(gamesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "likedBy", Value: firestore.ArrayUnion(email)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrGameNotFound
		}
		return fmt.Errorf("add favorite on game %q: %w", id, err)
	}
	return nil
}

// RemoveFavorite removes email from the listing's likedBy set. Removing
// an absent email is a no-op server-side.
func (r *GameRepo) RemoveFavorite(ctx context.Context, id, email string) error {
	_, err := r.client.Collection(gamesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "likedBy", Value: firestore.ArrayRemove(email)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrGameNotFound
		}
		return fmt.Errorf("remove favorite on game %q: %w", id, err)
	}
	return nil
}

// docToGame decodes a snapshot into a Game, defaulting missing fields
// once at the store boundary: absent strings decode to "" and an absent
// likedBy decodes to an empty slice, so callers never see nil.
func docToGame(snap *firestore.DocumentSnapshot) (*domain.Game, error) {
	var g domain.Game
	if err := snap.DataTo(&g); err != nil {
		return nil, fmt.Errorf("decode game %q: %w", snap.Ref.ID, err)
	}
	g.ID = snap.Ref.ID
	if g.LikedBy == nil {
		g.LikedBy = []string{}
	}
	return &g, nil
}
