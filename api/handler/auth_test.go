package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/taskdeck/web/api/view"
	"github.com/taskdeck/web/domain"
	"github.com/taskdeck/web/internal/middleware"
	identityUC "github.com/taskdeck/web/usecase/identity"
)

// --- fakes shared by the handler tests ---

type memAccountRepo struct {
	byEmail map[string]*domain.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func (m *memAccountRepo) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if _, ok := m.byEmail[account.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	if account.ID == "" {
		account.ID = "acc-" + account.Email
	}
	account.CreatedAt = time.Now()
	m.byEmail[account.Email] = account
	return account, nil
}

func (m *memAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if account, ok := m.byEmail[email]; ok {
		return account, nil
	}
	return nil, domain.ErrAccountNotFound
}

type memSessionRepo struct {
	sessions map[string]*domain.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (m *memSessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (m *memSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	m.sessions[session.ID] = session
	return nil
}

func (m *memSessionRepo) Delete(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func newFormCtx(method, uri, body string) *fasthttp.RequestCtx {
	ctx := new(fasthttp.RequestCtx)
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.Header.SetContentType("application/x-www-form-urlencoded")
		ctx.Request.SetBodyString(body)
	}
	return ctx
}

func newAuthFixture(t *testing.T) (*AuthHandler, *memAccountRepo, *memSessionRepo, *middleware.CookieCodec) {
	t.Helper()
	renderer, err := view.New()
	require.NoError(t, err)

	accounts := newMemAccountRepo()
	sessions := newMemSessionRepo()
	codec := middleware.NewCookieCodec("sid", "test-secret", time.Hour)
	uc := identityUC.New(accounts, sessions, nil, time.Hour, nil)
	return NewAuthHandler(uc, renderer, codec, nil, nil), accounts, sessions, codec
}

// --- tests ---

func TestSignupForm_RendersPage(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newAuthFixture(t)
	ctx := newFormCtx("GET", "http://example.com/signup", "")
	h.SignupForm(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `action="/signup"`)
}

func TestSignup_SuccessRedirectsToLogin(t *testing.T) {
	t.Parallel()

	h, accounts, _, _ := newAuthFixture(t)
	ctx := newFormCtx("POST", "http://example.com/signup", "email=dana%40example.com&password=secret1")
	h.Signup(ctx)

	assert.Equal(t, fasthttp.StatusFound, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Header.Peek("Location")), "/login")
	assert.Contains(t, accounts.byEmail, "dana@example.com")
}

func TestSignup_ErrorBodyIsRawMessage(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newAuthFixture(t)

	// first registration takes the email
	h.Signup(newFormCtx("POST", "http://example.com/signup", "email=dana%40example.com&password=secret1"))

	ctx := newFormCtx("POST", "http://example.com/signup", "email=dana%40example.com&password=secret1")
	h.Signup(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, domain.ErrEmailTaken.Error(), string(ctx.Response.Body()))
}

func TestSignup_WeakPasswordMessage(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newAuthFixture(t)
	ctx := newFormCtx("POST", "http://example.com/signup", "email=dana%40example.com&password=abc")
	h.Signup(ctx)

	assert.Equal(t, domain.ErrWeakPassword.Error(), string(ctx.Response.Body()))
}

func TestLogin_UnknownEmailYieldsFixedMessage(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newAuthFixture(t)
	ctx := newFormCtx("POST", "http://example.com/login", "email=ghost%40example.com")
	h.Login(ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "Invalid credentials", string(ctx.Response.Body()))
}

func TestLogin_SuccessSetsCookieAndRedirects(t *testing.T) {
	t.Parallel()

	h, accounts, sessions, _ := newAuthFixture(t)
	accounts.byEmail["dana@example.com"] = &domain.Account{ID: "acc-1", Email: "dana@example.com"}

	ctx := newFormCtx("POST", "http://example.com/login", "email=dana%40example.com")
	h.Login(ctx)

	assert.Equal(t, fasthttp.StatusFound, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Header.Peek("Location")), "/dashboard")
	assert.NotEmpty(t, ctx.Response.Header.PeekCookie("sid"))
	assert.Len(t, sessions.sessions, 1)
}

func TestLogout_DestroysSessionAndRedirects(t *testing.T) {
	t.Parallel()

	h, accounts, sessions, codec := newAuthFixture(t)
	accounts.byEmail["dana@example.com"] = &domain.Account{ID: "acc-1", Email: "dana@example.com"}

	// log in to obtain a session cookie
	loginCtx := newFormCtx("POST", "http://example.com/login", "email=dana%40example.com")
	h.Login(loginCtx)
	require.Len(t, sessions.sessions, 1)

	var sid string
	for id := range sessions.sessions {
		sid = id
	}

	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)
	require.NoError(t, cookie.ParseBytes(loginCtx.Response.Header.PeekCookie("sid")))

	logoutCtx := newFormCtx("GET", "http://example.com/logout", "")
	logoutCtx.Request.Header.SetCookie("sid", string(cookie.Value()))
	h.Logout(logoutCtx)

	assert.Equal(t, fasthttp.StatusFound, logoutCtx.Response.StatusCode())
	assert.Contains(t, string(logoutCtx.Response.Header.Peek("Location")), "/login")
	_, ok := sessions.sessions[sid]
	assert.False(t, ok, "session must be destroyed before the redirect is written")

	// the same cookie can no longer pass the access gate
	gate := middleware.SessionAuth(codec, sessions, time.Second, nil)
	reached := false
	protected := gate(func(ctx *fasthttp.RequestCtx) { reached = true })

	dashCtx := newFormCtx("GET", "http://example.com/dashboard", "")
	dashCtx.Request.Header.SetCookie("sid", string(cookie.Value()))
	protected(dashCtx)

	assert.False(t, reached)
	assert.Equal(t, fasthttp.StatusFound, dashCtx.Response.StatusCode())
}

func TestLogout_WithoutCookieStillRedirects(t *testing.T) {
	t.Parallel()

	h, _, _, _ := newAuthFixture(t)
	ctx := newFormCtx("GET", "http://example.com/logout", "")
	h.Logout(ctx)

	assert.Equal(t, fasthttp.StatusFound, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Header.Peek("Location")), "/login")
}
