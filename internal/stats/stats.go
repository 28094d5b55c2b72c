// Package stats maintains a periodically refreshed snapshot of catalog
// counters (listings per café, total favorite marks) so the landing
// page does not trigger a full collection scan per visit.
package stats

import (
	"time"

	"github.com/google/uuid"

	"github.com/braetspilscafeen/go-catalog-backend/internal/games/domain"
)

// Snapshot is one point-in-time aggregation over the Games collection.
type Snapshot struct {
	ID             string         `json:"id"`
	GeneratedAt    time.Time      `json:"generated_at"`
	TotalGames     int            `json:"total_games"`
	TotalFavorites int            `json:"total_favorites"`
	PerCafe        map[string]int `json:"per_cafe"`
}

// BuildSnapshot aggregates the given listings. Games with an
// unrecognized café count toward the totals but appear in no per-café
// bucket, matching the grouped catalog view.
func BuildSnapshot(games []*domain.Game, now time.Time) *Snapshot {
	snap := &Snapshot{
		ID:          uuid.NewString(),
		GeneratedAt: now.UTC(),
		TotalGames:  len(games),
		PerCafe:     make(map[string]int, len(domain.Cafes())),
	}
	for _, c := range domain.Cafes() {
		snap.PerCafe[string(c)] = 0
	}
	for _, g := range games {
		if _, ok := snap.PerCafe[g.Cafe]; ok {
			snap.PerCafe[g.Cafe]++
		}
		snap.TotalFavorites += len(g.LikedBy)
	}
	return snap
}
