package model

import "time"

// Service is one offering shown on the public services page, ordered by
// Position within its locale.
type Service struct {
	ID          string
	Title       string
	Description string
	Position    int
	Locale      string
	IconURL     string // empty when no icon has been uploaded
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
