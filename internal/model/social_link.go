package model

// SocialLink is a named external profile URL rendered in the site footer.
type SocialLink struct {
	ID   string
	Name string
	URL  string
}
