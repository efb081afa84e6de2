package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/helpdesk/ticketing-system/internal/api/metrics"
	"github.com/helpdesk/ticketing-system/internal/api/middleware"
	"github.com/helpdesk/ticketing-system/internal/core/domain"
	"github.com/helpdesk/ticketing-system/internal/core/ports"
)

// TicketHandler handles HTTP requests for ticket operations.
type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

// Create handles POST /api/tickets. Only authenticated non-admin users may
// open tickets; the admin check lives in the service.
//
// @Summary      Create a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        body  body      createTicketRequest  true  "Ticket details"
// @Success      201   {object}  domain.Ticket
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Title = strings.TrimSpace(req.Title)
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, _ := c.Get(middleware.ContextUserID).(string)
	role, _ := c.Get(middleware.ContextRole).(string)

	ticket, err := h.service.Create(c.Request().Context(), ports.CreateTicketInput{
		Title:       req.Title,
		Description: req.Description,
		CreatorID:   userID,
		CreatorRole: role,
	})
	if err != nil {
		return err
	}

	metrics.TicketsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, ticket)
}

// List handles GET /api/tickets. Returns all tickets newest-first with
// creator usernames and comments embedded; any authenticated user may list.
//
// @Summary      List all tickets
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   ports.TicketView
// @Failure      401  {object}  errorResponse
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if views == nil {
		views = []ports.TicketView{}
	}
	return c.JSON(http.StatusOK, views)
}

// UpdateStatus handles PATCH /api/tickets/:id/status (admin only).
//
// @Summary      Update a ticket's status
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Ticket ID"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Ticket
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/tickets/{id}/status [patch]
func (h *TicketHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ticket, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), domain.TicketStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.StatusChangesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, ticket)
}

// Delete handles DELETE /api/tickets/:id (admin only). Removes the ticket
// and every comment referencing it.
//
// @Summary      Delete a ticket and its comments
// @Tags         tickets
// @Produce      json
// @Param        id  path      string  true  "Ticket ID"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/tickets/{id} [delete]
func (h *TicketHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.TicketsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Ticket and associated comments deleted successfully"})
}

// AddComment handles POST /api/tickets/:id/comments (admin only).
//
// @Summary      Add a comment to a ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Ticket ID"
// @Param        body  body      addCommentRequest  true  "Comment content"
// @Success      201   {object}  ports.CommentView
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/tickets/{id}/comments [post]
func (h *TicketHandler) AddComment(c echo.Context) error {
	var req addCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := c.Validate(&req); err != nil {
		return err
	}

	adminID, _ := c.Get(middleware.ContextUserID).(string)
	comment, err := h.service.AddComment(c.Request().Context(), ports.AddCommentInput{
		TicketID: c.Param("id"),
		AdminID:  adminID,
		Content:  req.Content,
	})
	if err != nil {
		return err
	}

	metrics.CommentsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, comment)
}
