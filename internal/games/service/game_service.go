package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/braetspilscafeen/go-catalog-backend/internal/games/domain"
)

// Store is the Games collection boundary as the service consumes it.
// Implemented by repository.GameRepo.
type Store interface {
	List(ctx context.Context) ([]*domain.Game, error)
	GetByID(ctx context.Context, id string) (*domain.Game, error)
	Create(ctx context.Context, g *domain.Game) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	AddFavorite(ctx context.Context, id, email string) error
	RemoveFavorite(ctx context.Context, id, email string) error
}

const (
	readAttempts  = 3
	readBaseDelay = 100 * time.Millisecond
)

// GameService owns the catalog flows: grouped listing, favorites and the
// favorite-toggle round trip. Reads retry transient store failures with
// bounded backoff; mutations never retry (a surfaced failure beats an
// accidental double write).
type GameService struct {
	store Store
}

func NewGameService(store Store) *GameService {
	return &GameService{store: store}
}

// ListGrouped fetches all listings and buckets them by café.
func (s *GameService) ListGrouped(ctx context.Context) (map[domain.Cafe][]*domain.Game, error) {
	games, err := s.listRetry(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupByCafe(games), nil
}

// ListFavorites fetches all listings and keeps the ones favorited by email.
func (s *GameService) ListFavorites(ctx context.Context, email string) ([]*domain.Game, error) {
	games, err := s.listRetry(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterLikedBy(games, email), nil
}

// Get fetches one listing by ID.
func (s *GameService) Get(ctx context.Context, id string) (*domain.Game, error) {
	return s.getRetry(ctx, id)
}

// Create stores a new listing. The draft must not carry an identifier;
// the store assigns one.
func (s *GameService) Create(ctx context.Context, g *domain.Game) (string, error) {
	if g.ID != "" {
		return "", fmt.Errorf("%w: draft already carries an id", domain.ErrInvalidGame)
	}
	if g.LikedBy == nil {
		g.LikedBy = []string{}
	}
	return s.store.Create(ctx, g)
}

// Update merges the given fields into an existing listing.
func (s *GameService) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalidGame)
	}
	return s.store.Update(ctx, id, fields)
}

// Delete removes a listing. No cascade: favorite marks live inside the
// listing document and disappear with it.
func (s *GameService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// ToggleFavorite flips email's membership in the listing's likedBy set
// and returns the authoritative post-toggle state. The flow is: read
// current membership, issue the union or remove, then re-fetch the
// document and report whether email is still present. Local state is
// never mutated optimistically; the re-fetch is the single source of
// truth, so a toggle racing another client converges on whatever the
// store last committed.
func (s *GameService) ToggleFavorite(ctx context.Context, id, email string) (*domain.Game, bool, error) {
	g, err := s.getRetry(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if g.LikedByContains(email) {
		err = s.store.RemoveFavorite(ctx, id, email)
	} else {
		err = s.store.AddFavorite(ctx, id, email)
	}
	if err != nil {
		return nil, false, err
	}

	fresh, err := s.getRetry(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return fresh, fresh.LikedByContains(email), nil
}

func (s *GameService) listRetry(ctx context.Context) ([]*domain.Game, error) {
	var games []*domain.Game
	err := withRetry(ctx, func() error {
		var err error
		games, err = s.store.List(ctx)
		return err
	})
	return games, err
}

func (s *GameService) getRetry(ctx context.Context, id string) (*domain.Game, error) {
	var g *domain.Game
	err := withRetry(ctx, func() error {
		var err error
		g, err = s.store.GetByID(ctx, id)
		return err
	})
	return g, err
}

// withRetry runs fn up to readAttempts times with doubling backoff.
// Not-found is terminal, not transient.
func withRetry(ctx context.Context, fn func() error) error {
	delay := readBaseDelay
	var err error
	for attempt := 0; attempt < readAttempts; attempt++ {
		if err = fn(); err == nil || errors.Is(err, domain.ErrGameNotFound) {
			return err
		}
		if attempt == readAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
