package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"aishield/api/internal/config"
	"aishield/api/internal/repository"
	"aishield/api/internal/service"
)

// Scheduler runs the maintenance jobs: sweeping expired sessions that lazy
// deletion never touched, and requeueing scan requests stuck in pending.
type Scheduler struct {
	cron     *cron.Cron
	sessions *repository.SessionRepository
	scans    *repository.ScanRepository
	scanSvc  *service.ScanService
	cfg      *config.AppConfig
	log      zerolog.Logger
}

func NewScheduler(
	sessions *repository.SessionRepository,
	scans *repository.ScanRepository,
	scanSvc *service.ScanService,
	cfg *config.AppConfig,
	log zerolog.Logger,
) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		sessions: sessions,
		scans:    scans,
		scanSvc:  scanSvc,
		cfg:      cfg,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 3 * * *", s.sweepSessions); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 15 * * * *", s.requeueStaleScans); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for running jobs, up to 5 seconds.
func (s *Scheduler) Stop() {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) sweepSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	deleted, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("session sweep failed")
		return
	}
	if deleted > 0 {
		s.log.Info().Int64("deleted", deleted).Msg("expired sessions swept")
	}
}

func (s *Scheduler) requeueStaleScans() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	stale, err := s.scans.ListStalePending(ctx, s.cfg.Scan.RequeueInterval)
	if err != nil {
		s.log.Error().Err(err).Msg("list stale scans failed")
		return
	}

	for _, req := range stale {
		if err := s.scanSvc.Enqueue(ctx, req); err != nil {
			s.log.Error().Err(err).Str("scan_id", req.ID).Msg("requeue scan failed")
		}
	}
	if len(stale) > 0 {
		s.log.Info().Int("count", len(stale)).Msg("stale scans requeued")
	}
}
