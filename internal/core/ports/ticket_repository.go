package ports

import (
	"context"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
)

// TicketRepository defines persistence operations for tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	FindByID(ctx context.Context, id string) (*domain.Ticket, error)
	// ListAll returns every ticket, newest-created first.
	ListAll(ctx context.Context) ([]*domain.Ticket, error)
	// UpdateStatus sets the status and bumps updated_at. Returns
	// domain.ErrTicketNotFound when no document matches id.
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error)
	// Delete removes the ticket document only; the service cascades
	// comment deletion before calling it.
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines persistence operations for ticket comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	// ListByTicket returns the ticket's comments, newest-created first.
	ListByTicket(ctx context.Context, ticketID string) ([]*domain.Comment, error)
	// DeleteByTicket removes all comments for the ticket and reports how
	// many were deleted.
	DeleteByTicket(ctx context.Context, ticketID string) (int64, error)
}
