package ports

import (
	"context"
	"time"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// CreateTicketInput carries a validated ticket creation request.
type CreateTicketInput struct {
	Title       string
	Description string
	CreatorID   string
	CreatorRole string
}

// AddCommentInput carries a validated comment creation request.
type AddCommentInput struct {
	TicketID string
	AdminID  string
	Content  string
}

// CommentView is a comment with its author's username resolved.
type CommentView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Admin     UserRef   `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRef is the minimal user projection embedded in ticket listings.
type UserRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// TicketView is a ticket with its creator's username and comments embedded,
// as returned by the list endpoint.
type TicketView struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TicketStatus `json:"status"`
	Creator     UserRef             `json:"creator"`
	Comments    []CommentView       `json:"comments"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TicketService implements the triage workflow.
type TicketService interface {
	// Create opens a ticket on behalf of a non-admin user. Admin callers
	// are rejected with domain.ErrAdminsCannotCreate.
	Create(ctx context.Context, input CreateTicketInput) (*domain.Ticket, error)
	// List returns all tickets newest-first, each with creator username and
	// newest-first comments embedded.
	List(ctx context.Context) ([]TicketView, error)
	// UpdateStatus sets a ticket's status to any of the four valid values.
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error)
	// Delete removes a ticket and cascades to all of its comments.
	Delete(ctx context.Context, id string) error
	// AddComment attaches an admin comment to an existing ticket and
	// returns it with the admin's username resolved.
	AddComment(ctx context.Context, input AddCommentInput) (*CommentView, error)
}
