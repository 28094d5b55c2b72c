package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	latestKey   = "catalog:stats:latest"
	snapshotTTL = 24 * time.Hour
)

// Store keeps the latest snapshot in Redis. A stale snapshot ages out
// after the TTL rather than being served forever when the job stops.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Save replaces the latest snapshot.
func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, latestKey, data, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Latest returns the current snapshot, or nil before the first run.
func (s *Store) Latest(ctx context.Context) (*Snapshot, error) {
	data, err := s.client.Get(ctx, latestKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
