package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a directory administrator account.
type Admin struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// SessionClaims identifies the authenticated admin carried by a session
// token.
type SessionClaims struct {
	AdminID  uuid.UUID `json:"admin_id"`
	Username string    `json:"username"`
}
