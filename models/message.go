package models

// Message is a rendered notification, shaped for a Discord embed but carrier
// agnostic: author block, accent color, title, link, and optional body.
type Message struct {
	AuthorName    string
	AuthorURL     string
	AuthorIconURL string
	// Color is a 6-hex-digit RGB string without a leading '#'.
	Color       string
	Title       string
	URL         string
	Description string
}
