package book

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a book does not exist in the caller's session.
var ErrNotFound = errors.New("book not found")

// Book represents a book entity owned by a browser session.
type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	CreatedAt time.Time `json:"created_at"`
	SessionID string    `json:"-"`
}

// NewBook carries the fields required to create a book.
type NewBook struct {
	Title  string
	Author string
	Genre  string
}

// Patch carries a partial update. Nil fields keep their stored values.
type Patch struct {
	Title  *string
	Author *string
	Genre  *string
}
