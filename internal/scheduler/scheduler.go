package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rahat-dev/mindnest/backend/internal/services"
	"github.com/rahat-dev/mindnest/backend/pkg/logger"
)

// Scheduler owns the background cron jobs
type Scheduler struct {
	cron *cron.Cron
	recs *services.RecommendationService
	log  logger.Logger
}

// New creates a Scheduler with the standard jobs registered:
// hourly purge of expired recommendation rows and a nightly top-up
// generation pass for recently active users.
func New(recs *services.RecommendationService, log logger.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		recs: recs,
		log:  log,
	}

	if _, err := s.cron.AddFunc("@hourly", s.purgeExpired); err != nil {
		return nil, err
	}
	// 03:00 server time, after the day's activity has settled
	if _, err := s.cron.AddFunc("0 3 * * *", s.nightlyGenerate); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron loop in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop halts the cron loop and waits for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) purgeExpired() {
	if _, err := s.recs.PurgeExpired(context.Background()); err != nil {
		s.log.Errorf("expired recommendation purge failed: %v", err)
	}
}

func (s *Scheduler) nightlyGenerate() {
	if err := s.recs.GenerateForRecentlyActive(context.Background()); err != nil {
		s.log.Errorf("nightly recommendation generation failed: %v", err)
	}
}
