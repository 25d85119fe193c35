package repository

import (
	"context"

	"github.com/taskdeck/web/domain"
)

// TaskRepository persists task records. Listing is owner-scoped and ordered
// by creation time descending. Delete is by id only; ownership is not
// checked at this layer.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	Delete(ctx context.Context, id string) error
}
