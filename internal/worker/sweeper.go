package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ticketline/internal/pkg/clock"
	"ticketline/internal/pkg/config"
	"ticketline/internal/pkg/errs"
	"ticketline/internal/usecase/commands"
)

// Sweeper periodically reclaims inventory from expired reservations.
// One instance per process is enough: the sweep query uses SKIP LOCKED,
// so extra replicas just divide the batch between them.
type Sweeper struct {
	sweep  commands.SweepCommands
	cfg    config.SweeperConfig
	clock  clock.Clock
	logger *slog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

func NewSweeper(sweep commands.SweepCommands, cfg config.SweeperConfig, clk clock.Clock, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		sweep:  sweep,
		cfg:    cfg,
		clock:  clk,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errs.New("sweeper already running")
	}
	s.running = true
	s.mu.Unlock()

	s.logger.Info("starting reservation sweeper",
		"interval", s.cfg.Interval.String(),
		"batch_size", s.cfg.BatchSize,
	)

	// The startup context is cancelled once boot completes; the loop must
	// outlive it and stops only through Stop.
	s.wg.Add(1)
	go s.loop(context.WithoutCancel(ctx))

	return nil
}

func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	s.logger.Info("reservation sweeper stopped")
}

func (s *Sweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	// Run immediately so a restart does not wait a full interval to
	// reclaim holds that expired while the process was down.
	s.sweepOnce(ctx)

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	n, err := s.sweep.ReleaseExpired(ctx, s.clock.Now(), s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("sweep pass failed", "error", err.Error())
		return
	}
	if n > 0 {
		s.logger.Info("sweep pass reclaimed reservations", "count", n)
	}
}
