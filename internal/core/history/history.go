package history

import "time"

// Section is one block of the about-page club history timeline.
type Section struct {
	ID        string    `json:"id"`
	Heading   string    `json:"heading"`
	Body      string    `json:"body"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldHeading = "heading"
	FieldBody    = "body"
)
