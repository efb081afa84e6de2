package handler

type createTicketRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending ongoing resolved rejected"`
}

type addCommentRequest struct {
	Content string `json:"content" validate:"required"`
}
