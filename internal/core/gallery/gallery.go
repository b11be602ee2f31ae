package gallery

import "time"

// Album groups event photos for the public gallery page.
type Album struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	TakenOn   *time.Time `json:"taken_on"`
	CoverURL  *string    `json:"cover_url"`
	PhotoURLs []string   `json:"photo_urls"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

const (
	FieldTitle    = "title"
	FieldCoverURL = "cover_url"
)
