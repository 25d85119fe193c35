package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/taskdeck/web/internal/infrastructure/journal"
)

// PrunerConfig controls how often old journal events are removed and how
// long they are kept.
type PrunerConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// JournalPruner trims the activity journal on a schedule so the local Bolt
// file stays bounded.
type JournalPruner struct {
	store  *journal.Store
	logger *zap.Logger
	cron   *cron.Cron
	cfg    PrunerConfig
}

func NewJournalPruner(store *journal.Store, logger *zap.Logger, cfg PrunerConfig) *JournalPruner {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 7 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &JournalPruner{
		store:  store,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = p.cron.AddFunc(schedule, func() {
		if err := p.Prune(); err != nil {
			p.logger.Error("journal prune failed", zap.Error(err))
		}
	})

	return p
}

// Start launches the cron scheduler.
func (p *JournalPruner) Start() {
	if p == nil || p.cron == nil {
		return
	}
	p.cron.Start()
	p.logger.Info("journal pruner started")
}

// Stop gracefully stops the scheduler.
func (p *JournalPruner) Stop(ctx context.Context) {
	if p == nil || p.cron == nil {
		return
	}
	stopCtx := p.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	p.logger.Info("journal pruner stopped")
}

// Prune removes events older than the retention window.
func (p *JournalPruner) Prune() error {
	if p == nil || p.store == nil {
		return nil
	}
	cutoff := time.Now().Add(-p.cfg.Retention)
	if err := p.store.Prune(cutoff); err != nil {
		return err
	}
	if size, err := p.store.Size(); err == nil {
		p.logger.Debug("journal pruned", zap.Int("remaining_events", size))
	}
	return nil
}
