package domain

import (
	"errors"
	"time"
)

// TicketStatus represents the triage state of a support ticket.
type TicketStatus string

const (
	StatusPending  TicketStatus = "pending"
	StatusOngoing  TicketStatus = "ongoing"
	StatusResolved TicketStatus = "resolved"
	StatusRejected TicketStatus = "rejected"
)

var ErrTicketNotFound = errors.New("ticket not found")
var ErrInvalidStatus = errors.New("invalid ticket status")
var ErrAdminsCannotCreate = errors.New("admins cannot create tickets")
var ErrForbidden = errors.New("access forbidden")

// IsValid reports whether s is one of the four known statuses. Admins may
// set any valid status from any prior state; there is no transition graph.
func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusOngoing, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Ticket is a support request raised by a non-admin user. Status starts at
// pending and is only ever changed by an admin.
type Ticket struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TicketStatus `json:"status"`
	CreatorID   string       `json:"-"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
