// Package models defines server-side data models persisted in the database.
package models

// User is a registered account. PasswordHash is a PHC-encoded Argon2 hash.
type User struct {
	ID           int64
	UserName     string
	PasswordHash string
}
