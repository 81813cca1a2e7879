package models

type Post struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// AuthorID is fixed at creation and never reassigned.
	AuthorID int `json:"author_id"`

	// Author fields populated by joined queries; zero-valued otherwise.
	AuthorEmail string `json:"author_email,omitempty"`
	AuthorName  string `json:"author_name,omitempty"`
}
