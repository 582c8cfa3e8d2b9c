// internal/cache/scheduler.go
package cache

import (
	"context"
	"log"
	"time"
)

// Cleaner removes expired entries from a durable backend
type Cleaner interface {
	CleanupExpired(ctx context.Context) (int64, error)
}

type Scheduler struct {
	cleaner  Cleaner
	interval time.Duration
}

func NewScheduler(cleaner Cleaner, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Scheduler{cleaner: cleaner, interval: interval}
}

// Start runs the cleanup job until ctx is done
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

func (s *Scheduler) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.RunOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// RunOnce performs a single cleanup pass
func (s *Scheduler) RunOnce(ctx context.Context) {
	n, err := s.cleaner.CleanupExpired(ctx)
	if err != nil {
		log.Printf("Cache cleanup failed: %v", err)
		return
	}
	cacheCleanupRows.Add(float64(n))
	if n > 0 {
		log.Printf("🧹 Removed %d expired cache entries", n)
	}
}
