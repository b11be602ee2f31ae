package event

import "time"

// Event represents a club event listed on the public events page.
type Event struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	StartsAt     time.Time  `json:"starts_at"`
	DisplayUntil *time.Time `json:"display_until"`
	Location     *string    `json:"location"`
	Link         *string    `json:"link"`
	Description  *string    `json:"description"`
	ImageURL     *string    `json:"image_url"`
	Featured     bool       `json:"featured"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Filter holds the parameters for a paginated event search.
type Filter struct {
	FeaturedOnly bool
	// VisibleOnly keeps only events whose display window has not closed.
	VisibleOnly bool
}

const (
	FieldTitle    = "title"
	FieldStartsAt = "starts_at"
	FieldLink     = "link"
	FieldImageURL = "image_url"
)
