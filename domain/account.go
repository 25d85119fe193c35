package domain

import "time"

// Account represents a registered identity. Accounts are created on signup,
// looked up by email on login, and never deleted by this service.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
