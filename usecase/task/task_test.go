package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/web/domain"
)

type fakeTaskRepo struct {
	inserted  []*domain.Task
	insertErr error

	listOut []domain.Task
	listErr error

	deleted []string
	delErr  error
}

func (f *fakeTaskRepo) Insert(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	if t.ID == "" {
		t.ID = "task-1"
	}
	t.CreatedAt = time.Now()
	f.inserted = append(f.inserted, t)
	return t, nil
}

func (f *fakeTaskRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Task
	for _, t := range f.listOut {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreate_AppliesDefaults(t *testing.T) {
	t.Parallel()

	repo := &fakeTaskRepo{}
	uc := New(repo, nil, nil)

	created, err := uc.Create(context.Background(), "acc-1", Input{Title: "Buy milk"})
	require.NoError(t, err)

	assert.Equal(t, "acc-1", created.OwnerID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.Equal(t, "", created.Description)
	assert.Equal(t, domain.DefaultCategory, created.Category)
	assert.Equal(t, domain.PriorityMedium, created.Priority)
	assert.Nil(t, created.DueDate)
	assert.Equal(t, domain.StatusPending, created.Status)
}

func TestCreate_OwnerAlwaysFromSession(t *testing.T) {
	t.Parallel()

	repo := &fakeTaskRepo{}
	uc := New(repo, nil, nil)

	_, err := uc.Create(context.Background(), "acc-7", Input{
		Title:    "Plan trip",
		Category: "Travel",
		Priority: "High",
	})
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "acc-7", repo.inserted[0].OwnerID)
	assert.Equal(t, domain.PriorityHigh, repo.inserted[0].Priority)
	assert.Equal(t, "Travel", repo.inserted[0].Category)
}

func TestListForOwner_ScopedToOwner(t *testing.T) {
	t.Parallel()

	repo := &fakeTaskRepo{listOut: []domain.Task{
		{ID: "t2", OwnerID: "acc-1", Title: "newer"},
		{ID: "t1", OwnerID: "acc-1", Title: "older"},
		{ID: "t3", OwnerID: "acc-2", Title: "someone else"},
	}}
	uc := New(repo, nil, nil)

	tasks, err := uc.ListForOwner(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t2", tasks[0].ID)
	assert.Equal(t, "t1", tasks[1].ID)
}

func TestDelete_NoOwnershipCheck(t *testing.T) {
	t.Parallel()

	repo := &fakeTaskRepo{}
	uc := New(repo, nil, nil)

	// acting account differs from the task's creator; deletion still goes through
	err := uc.Delete(context.Background(), "acc-2", "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, repo.deleted)
}

func TestDelete_PropagatesStoreError(t *testing.T) {
	t.Parallel()

	repo := &fakeTaskRepo{delErr: domain.ErrTaskNotFound}
	uc := New(repo, nil, nil)

	err := uc.Delete(context.Background(), "acc-1", "missing")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
