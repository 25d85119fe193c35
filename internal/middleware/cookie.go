package middleware

import (
	"time"

	"github.com/valyala/fasthttp"
)

// CookieCodec issues and reads the session cookie. The cookie value is a
// signed token wrapping the server-side session id; the signing secret comes
// from configuration.
type CookieCodec struct {
	name   string
	secret []byte
	ttl    time.Duration
}

func NewCookieCodec(name, secret string, ttl time.Duration) *CookieCodec {
	if name == "" {
		name = "taskdeck_session"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &CookieCodec{
		name:   name,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs the session id and sets it as an HTTP-only cookie.
func (c *CookieCodec) Issue(ctx *fasthttp.RequestCtx, sessionID string) error {
	token, err := signSessionToken(sessionID, c.secret, c.ttl)
	if err != nil {
		return err
	}

	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(c.name)
	cookie.SetValue(token)
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetMaxAge(int(c.ttl.Seconds()))
	ctx.Response.Header.SetCookie(cookie)
	return nil
}

// Clear expires the session cookie on the client.
func (c *CookieCodec) Clear(ctx *fasthttp.RequestCtx) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(c.name)
	cookie.SetValue("")
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetExpire(fasthttp.CookieExpireDelete)
	ctx.Response.Header.SetCookie(cookie)
}

// SessionID extracts and verifies the session id from the request cookie.
func (c *CookieCodec) SessionID(ctx *fasthttp.RequestCtx) (string, error) {
	raw := ctx.Request.Header.Cookie(c.name)
	if len(raw) == 0 {
		return "", errInvalidToken
	}
	return parseSessionToken(string(raw), c.secret)
}
