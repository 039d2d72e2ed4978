package types

// Note is a single user-created record. ID is unique within a session.
type Note struct {
	ID          int64  `json:"id" toml:"id"`
	Title       string `json:"title" toml:"title"`
	Description string `json:"description" toml:"description"`
}
