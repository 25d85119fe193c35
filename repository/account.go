package repository

import (
	"context"

	"github.com/taskdeck/web/domain"
)

// AccountRepository is the identity gateway: it creates accounts and looks
// them up by email. Failures come back as classified domain errors so the
// handlers can surface the message verbatim.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}
