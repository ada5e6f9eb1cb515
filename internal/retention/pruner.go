package retention

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	rcron "github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"mindease/backend/internal/config"
)

// Pruner is the subset of store.Store the retention job needs.
type Pruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service deletes chat and mood logs older than the retention window on a
// cron schedule.
type Service struct {
	target    Pruner
	retention time.Duration
	schedule  string
	logger    *zap.Logger
	now       func() time.Time

	mu   sync.Mutex
	cron *rcron.Cron
}

func NewService(target Pruner, retention time.Duration, schedule string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		target:    target,
		retention: retention,
		schedule:  schedule,
		logger:    logger.Named("retention"),
		now:       time.Now,
	}
}

// Start registers the prune job and runs the scheduler until ctx is done or
// Stop is called.
func (s *Service) Start(ctx context.Context) error {
	if s.target == nil {
		return errors.New("retention target is nil")
	}
	if s.retention <= 0 {
		return errors.New("retention window must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return errors.New("retention service already started")
	}

	c := rcron.New(rcron.WithParser(config.RetentionParser))
	if _, err := c.AddFunc(s.schedule, func() {
		if _, err := s.RunOnce(ctx); err != nil {
			s.logger.Warn("log prune failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("register retention job %q: %w", s.schedule, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("retention scheduler started",
		zap.String("schedule", s.schedule),
		zap.Duration("retention", s.retention),
	)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Service) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c == nil {
		return
	}
	<-c.Stop().Done()
	s.logger.Info("retention scheduler stopped")
}

// RunOnce prunes everything older than now minus the retention window.
func (s *Service) RunOnce(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.retention)
	removed, err := s.target.PruneBefore(ctx, cutoff)
	if err != nil {
		return removed, fmt.Errorf("prune before %s: %w", cutoff.UTC().Format(time.RFC3339), err)
	}
	s.logger.Info("pruned logs", zap.Int64("removed", removed), zap.Time("cutoff", cutoff))
	return removed, nil
}
