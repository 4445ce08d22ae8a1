package model

import "time"

// ContactMessage represents one inquiry submitted via the public contact form.
// Subject is optional; everything else is validated before the record is
// persisted.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
