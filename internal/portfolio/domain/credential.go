package domain

import "time"

// Credential is an administrator login record. The deployment has exactly one
// today, but nothing here assumes that.
type Credential struct {
	Email        string
	PasswordHash string // argon2id PHC encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
