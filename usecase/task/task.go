package task

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/taskdeck/web/domain"
	"github.com/taskdeck/web/repository"
	"github.com/taskdeck/web/usecase"
)

// Input carries the submitted form fields for a new task. Empty fields fall
// back to the documented defaults; the owner and status are never taken from
// client input.
type Input struct {
	Title       string
	Description string
	Category    string
	Priority    string
	DueDate     *time.Time
}

type UseCase struct {
	tasks    repository.TaskRepository
	recorder usecase.ActivityRecorder
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, recorder usecase.ActivityRecorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		recorder: recorder,
		logger:   logger,
	}
}

// Create stamps the owner from the session, applies defaults, and inserts
// one record. CreatedAt is assigned by the store.
func (uc *UseCase) Create(ctx context.Context, ownerID string, input Input) (*domain.Task, error) {
	task := &domain.Task{
		OwnerID:     ownerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    domain.Priority(input.Priority),
		DueDate:     input.DueDate,
		Status:      domain.StatusPending,
	}
	task.ApplyDefaults()

	created, err := uc.tasks.Insert(ctx, task)
	if err != nil {
		return nil, err
	}

	uc.record(ctx, ownerID, "task_created", created.ID)
	return created, nil
}

// ListForOwner returns the owner's tasks, most recent first.
func (uc *UseCase) ListForOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return uc.tasks.ListByOwner(ctx, ownerID)
}

// Delete removes a task by id. The requesting account is recorded for the
// journal but not checked against the task's owner.
func (uc *UseCase) Delete(ctx context.Context, actorID, id string) error {
	if err := uc.tasks.Delete(ctx, id); err != nil {
		return err
	}
	uc.record(ctx, actorID, "task_deleted", id)
	return nil
}

func (uc *UseCase) record(ctx context.Context, actor, action, subject string) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.Record(ctx, actor, action, subject)
}
