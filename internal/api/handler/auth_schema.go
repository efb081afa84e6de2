package handler

// errorResponse is the standard error envelope rendered by the central
// error handler on all 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// messageResponse is the envelope for operations whose result is a
// confirmation string (register, logout, delete).
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message string `json:"message"`
	Role    string `json:"role"`
}
