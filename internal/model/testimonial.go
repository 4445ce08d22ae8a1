package model

import "time"

// Testimonial is a customer quote shown on the public site, scoped by locale.
type Testimonial struct {
	ID        string
	Name      string
	Quote     string
	Locale    string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
