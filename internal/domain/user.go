package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	FirstName      string    `json:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsAdmin        bool      `json:"is_admin"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateUserInput struct {
	Email          string
	Password       string
	FirstName      string
	LastName       string
	TelegramChatID *int64
}

// Principal is the authenticated identity the services trust.
// It is produced by the auth middleware and never re-validated downstream.
type Principal struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// CanAccess reports whether the principal may read or mutate a
// resource owned by userID.
func (p Principal) CanAccess(userID string) bool {
	return p.IsAdmin || p.UserID == userID
}
