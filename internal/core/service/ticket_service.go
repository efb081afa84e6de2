package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// TicketService implements ticket triage: creation by users, listing for
// everyone, and status/comment/delete operations for admins.
type TicketService struct {
	tickets  ports.TicketRepository
	comments ports.CommentRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewTicketService(tickets ports.TicketRepository, comments ports.CommentRepository, users ports.UserRepository, logger zerolog.Logger) *TicketService {
	return &TicketService{tickets: tickets, comments: comments, users: users, logger: logger}
}

// Create opens a new ticket with status pending. Admin callers are rejected;
// tickets are raised by end users and triaged by admins.
func (s *TicketService) Create(ctx context.Context, input ports.CreateTicketInput) (*domain.Ticket, error) {
	if input.CreatorRole == domain.RoleAdmin {
		return nil, domain.ErrAdminsCannotCreate
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      domain.StatusPending,
		CreatorID:   input.CreatorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.tickets.Create(ctx, ticket)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create ticket")
		return nil, err
	}

	s.logger.Info().Str("ticket_id", created.ID).Str("creator_id", created.CreatorID).Msg("ticket created")
	return created, nil
}

// List returns all tickets newest-first, each with its creator's username
// and its comments (newest-first, admin usernames resolved) embedded.
// Comments are fetched per ticket; acceptable at helpdesk scale, and the
// repository interface leaves room for a batched lookup later.
func (s *TicketService) List(ctx context.Context) ([]ports.TicketView, error) {
	tickets, err := s.tickets.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	usernames := map[string]string{}
	views := make([]ports.TicketView, 0, len(tickets))
	for _, t := range tickets {
		comments, err := s.comments.ListByTicket(ctx, t.ID)
		if err != nil {
			return nil, err
		}

		commentViews := make([]ports.CommentView, 0, len(comments))
		for _, c := range comments {
			name, err := s.username(ctx, usernames, c.AdminID)
			if err != nil {
				return nil, err
			}
			commentViews = append(commentViews, ports.CommentView{
				ID:        c.ID,
				Content:   c.Content,
				Admin:     ports.UserRef{ID: c.AdminID, Username: name},
				CreatedAt: c.CreatedAt,
				UpdatedAt: c.UpdatedAt,
			})
		}

		creatorName, err := s.username(ctx, usernames, t.CreatorID)
		if err != nil {
			return nil, err
		}

		views = append(views, ports.TicketView{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      t.Status,
			Creator:     ports.UserRef{ID: t.CreatorID, Username: creatorName},
			Comments:    commentViews,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
		})
	}

	return views, nil
}

// UpdateStatus applies any of the four valid statuses regardless of the
// prior state. Invalid values are expected to be caught by request
// validation; the guard here protects non-HTTP callers.
func (s *TicketService) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, err := s.tickets.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("ticket_id", id).Str("status", string(status)).Msg("ticket status updated")
	return updated, nil
}

// Delete removes a ticket and cascades to its comments. Comments go first
// so no comment can ever reference a missing ticket.
func (s *TicketService) Delete(ctx context.Context, id string) error {
	if _, err := s.tickets.FindByID(ctx, id); err != nil {
		return err
	}

	removed, err := s.comments.DeleteByTicket(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tickets.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("ticket_id", id).Int64("comments_removed", removed).Msg("ticket deleted")
	return nil
}

// AddComment attaches an admin comment to an existing ticket.
func (s *TicketService) AddComment(ctx context.Context, input ports.AddCommentInput) (*ports.CommentView, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domain.ErrEmptyComment
	}

	if _, err := s.tickets.FindByID(ctx, input.TicketID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment, err := s.comments.Create(ctx, &domain.Comment{
		TicketID:  input.TicketID,
		AdminID:   input.AdminID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	admin, err := s.users.FindByID(ctx, input.AdminID)
	if err != nil {
		return nil, err
	}

	return &ports.CommentView{
		ID:        comment.ID,
		Content:   comment.Content,
		Admin:     ports.UserRef{ID: admin.ID, Username: admin.Username},
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}, nil
}

func (s *TicketService) username(ctx context.Context, cache map[string]string, userID string) (string, error) {
	if name, ok := cache[userID]; ok {
		return name, nil
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// creator account removed out-of-band; render the reference raw
			cache[userID] = userID
			return userID, nil
		}
		return "", err
	}
	cache[userID] = user.Username
	return user.Username, nil
}
