package model

import "time"

// User is a registered account. Users are created by registration and never
// mutated afterwards; the username is unique across all records.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	// PasswordHash is the salted one-way digest of the password. The
	// plaintext is never stored, and the hash is never serialized to
	// clients.
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
