package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/web/domain"
	"github.com/taskdeck/web/repository"
)

const sessionKey = "session"

const loginPath = "/login"

// SessionAuth is the access gate for task-management pages. A request passes
// iff its cookie resolves to a stored session carrying a non-empty user;
// otherwise the request is redirected to the login page and the wrapped
// handler never runs.
func SessionAuth(codec *CookieCodec, sessions repository.SessionRepository, timeout time.Duration, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			sid, err := codec.SessionID(ctx)
			if err != nil {
				redirectToLogin(ctx)
				return
			}

			stdCtx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			session, err := sessions.Get(stdCtx, sid)
			if err != nil {
				if !errors.Is(err, domain.ErrSessionNotFound) {
					logger.Warn("session lookup failed", zap.Error(err))
				}
				redirectToLogin(ctx)
				return
			}
			if !session.Authenticated() {
				redirectToLogin(ctx)
				return
			}

			SetSession(ctx, session)
			next(ctx)
		}
	}
}

// SetSession stores the resolved session on the request context.
func SetSession(ctx *fasthttp.RequestCtx, session *domain.Session) {
	ctx.SetUserValue(sessionKey, session)
}

// SessionFrom returns the session placed on the request by SessionAuth,
// or nil when the gate did not run.
func SessionFrom(ctx *fasthttp.RequestCtx) *domain.Session {
	session, _ := ctx.UserValue(sessionKey).(*domain.Session)
	return session
}

func redirectToLogin(ctx *fasthttp.RequestCtx) {
	ctx.Redirect(loginPath, fasthttp.StatusFound)
}
