package domain

import "time"

// SessionUser is the identity snapshot carried inside a session blob.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session represents server-side authenticated state stored in Redis and
// referenced by an opaque token carried in a cookie.
type Session struct {
	ID        string      `json:"id"`
	User      SessionUser `json:"user"`
	CreatedAt time.Time   `json:"created_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Authenticated reports whether the session carries a logged-in identity.
func (s *Session) Authenticated() bool {
	return s != nil && s.User.ID != ""
}

func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}
