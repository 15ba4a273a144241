package model

import (
	"time"
)

// DefaultCategory is applied when a note is created without one.
const DefaultCategory = "General"

type Note struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Pinned   bool    `json:"pinned"`
	Summary  *string `json:"summary"` // nil when the note had no content to summarize

	// Seq is a storage-side insertion counter used only as an ordering
	// tie-break; it never leaves the server.
	Seq int64 `json:"-"`

	CreatedAt time.Time `json:"timestamp"`
	UserID    string    `json:"-"`
}
