package service

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/digitaltwin/dashboard-core/internal/api/metrics"
)

// DefaultRefreshInterval is the periodic re-fetch cadence when none is
// configured.
const DefaultRefreshInterval = 5 * time.Minute

// refresher is the slice of the dashboard service the scheduler drives:
// the lightweight current-metrics overlay, not a full aggregation.
type refresher interface {
	RefreshCurrent(ctx context.Context) error
}

// Scheduler re-invokes the current-metrics refresh on a fixed interval.
// Transient tick failures are swallowed (logged and counted) so the timer is
// never torn down by them; only Stop cancels it, which logout and auth
// failures call through the dashboard service.
type Scheduler struct {
	target   refresher
	interval time.Duration
	log      zerolog.Logger

	mu   sync.Mutex
	cron *cron.Cron
}

func NewScheduler(target refresher, interval time.Duration, log zerolog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Scheduler{target: target, interval: interval, log: log}
}

// Start begins the periodic timer. Starting an already-running scheduler is
// a no-op, so a re-login after logout always ends up with exactly one timer.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return
	}
	c := cron.New()
	c.Schedule(cron.Every(s.interval), cron.FuncJob(s.tick))
	c.Start()
	s.cron = c
	s.log.Info().Dur("interval", s.interval).Msg("refresh scheduler started")
}

// Stop cancels the periodic timer. Idempotent: stopping an inactive
// scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return
	}
	s.cron.Stop()
	s.cron = nil
	s.log.Info().Msg("refresh scheduler stopped")
}

// Running reports whether the periodic timer is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	if err := s.target.RefreshCurrent(ctx); err != nil {
		// Logged only; the timer keeps running.
		metrics.RefreshTicksTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Msg("periodic refresh failed")
		return
	}
	metrics.RefreshTicksTotal.WithLabelValues("ok").Inc()
}
