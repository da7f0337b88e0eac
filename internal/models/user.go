package models

// User represents a registered account. The password hash never leaves the
// backend; handlers blank it before responding.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
}
