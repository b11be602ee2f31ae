package carousel

import "time"

// Image is a single slide of the homepage carousel.
type Image struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   *string   `json:"caption"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	FieldImageURL = "image_url"
	FieldCaption  = "caption"
)
