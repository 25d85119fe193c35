package handler

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdeck/web/api/view"
	"github.com/taskdeck/web/internal/middleware"
	"github.com/taskdeck/web/pkg/httpcontext"
	identityUC "github.com/taskdeck/web/usecase/identity"
)

// invalidCredentials is the single user-facing message for every login
// failure; the underlying cause is deliberately discarded.
const invalidCredentials = "Invalid credentials"

type AuthHandler struct {
	baseHandler
	uc       *identityUC.UseCase
	renderer *view.Renderer
	cookies  *middleware.CookieCodec
}

func NewAuthHandler(uc *identityUC.UseCase, renderer *view.Renderer, cookies *middleware.CookieCodec, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		renderer:    renderer,
		cookies:     cookies,
	}
}

// SignupForm renders the signup page.
func (h *AuthHandler) SignupForm(ctx *fasthttp.RequestCtx) {
	if err := h.renderer.Render(ctx, "signup.html", nil); err != nil {
		h.logger.Error("signup page render failed", zap.Error(err))
	}
}

// Signup creates the account and sends the user to the login page. Provider
// errors are written verbatim as the response body.
func (h *AuthHandler) Signup(ctx *fasthttp.RequestCtx) {
	email := string(ctx.PostArgs().Peek("email"))
	password := string(ctx.PostArgs().Peek("password"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := h.uc.SignUp(stdCtx, email, password); err != nil {
		h.renderFailure(ctx, err)
		return
	}
	h.redirect(ctx, loginPath)
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(ctx *fasthttp.RequestCtx) {
	if err := h.renderer.Render(ctx, "login.html", nil); err != nil {
		h.logger.Error("login page render failed", zap.Error(err))
	}
}

// Login establishes a session for the account matching the submitted email
// and sets the session cookie. Every failure collapses to the same fixed
// message.
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	email := string(ctx.PostArgs().Peek("email"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.LogIn(stdCtx, email)
	if err != nil {
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString(invalidCredentials)
		return
	}

	if err := h.cookies.Issue(ctx, session.ID); err != nil {
		h.logger.Error("failed to issue session cookie", zap.Error(err))
		h.renderFailure(ctx, err)
		return
	}
	h.redirect(ctx, dashboardPath)
}

// Logout destroys the current session, clears the cookie, and redirects to
// the login page. Destruction is awaited; its errors are never shown.
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if sid, err := h.cookies.SessionID(ctx); err == nil {
		h.uc.LogOut(stdCtx, sid)
	}
	h.cookies.Clear(ctx)
	h.redirect(ctx, loginPath)
}
