package stats

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/braetspilscafeen/go-catalog-backend/internal/games/domain"
)

// GameSource is the read-only slice of the Games store the snapshot job
// needs. Implemented by repository.GameRepo.
type GameSource interface {
	List(ctx context.Context) ([]*domain.Game, error)
}

// Scheduler refreshes the stats snapshot on a cron spec. One refresh is
// run eagerly on Start so the endpoint serves data before the first tick.
type Scheduler struct {
	source GameSource
	store  *Store
	cron   *cron.Cron
}

func NewScheduler(source GameSource, store *Store) *Scheduler {
	return &Scheduler{
		source: source,
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.refresh); err != nil {
		return err
	}

	go s.refresh()

	log.Printf("stats scheduler started (spec %q)", spec)
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	games, err := s.source.List(ctx)
	if err != nil {
		log.Printf("stats refresh: list games: %v", err)
		return
	}

	snap := BuildSnapshot(games, time.Now())
	if err := s.store.Save(ctx, snap); err != nil {
		log.Printf("stats refresh: %v", err)
		return
	}
	log.Printf("stats refresh: snapshot %s (%d games)", snap.ID, snap.TotalGames)
}
