package model

import "time"

// Admin is a back-office user. PasswordHash is a bcrypt digest and never
// leaves the server.
type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
