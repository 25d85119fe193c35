package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskdeck/web/internal/infrastructure/journal"
	"github.com/taskdeck/web/usecase"
)

// JournalRecorder writes activity events to the local journal. Failures are
// logged and swallowed so a journal outage never surfaces to a request.
type JournalRecorder struct {
	store  *journal.Store
	logger *zap.Logger
}

func NewJournalRecorder(store *journal.Store, logger *zap.Logger) *JournalRecorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JournalRecorder{store: store, logger: logger}
}

func (r *JournalRecorder) Record(ctx context.Context, actor, action, subject string) {
	if r == nil || r.store == nil {
		return
	}
	if err := r.store.Append(journal.Event{
		Actor:   actor,
		Action:  action,
		Subject: subject,
	}); err != nil {
		r.logger.Warn("failed to journal activity",
			zap.String("action", action),
			zap.Error(err))
	}
}

var _ usecase.ActivityRecorder = (*JournalRecorder)(nil)
