package model

import "time"

// Page is an admin-managed CMS page, addressed publicly by slug.
type Page struct {
	ID        string
	Title     string
	Slug      string
	Published bool
	Locale    string
	Content   string // sanitized HTML authored in the back-office
	CreatedAt time.Time
	UpdatedAt time.Time
}
