package domain

import (
	"errors"
	"time"
)

// ErrEmptyComment rejects comment content that is empty after trimming.
var ErrEmptyComment = errors.New("comment content cannot be empty")

// Comment is an admin-authored note on a ticket. Comments are never edited
// and are removed only when their ticket is deleted.
type Comment struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"-"`
	AdminID   string    `json:"-"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
