package officer

import "time"

// Officer represents a club officer shown on the public officers page.
type Officer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Email     string    `json:"email"`
	Major     *string   `json:"major"`
	Year      *string   `json:"year"`
	Instagram *string   `json:"instagram"`
	LinkedIn  *string   `json:"linkedin"`
	Bio       *string   `json:"bio"`
	ImageURL  *string   `json:"image_url"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldName     = "name"
	FieldPosition = "position"
	FieldEmail    = "email"
	FieldImageURL = "image_url"
)
