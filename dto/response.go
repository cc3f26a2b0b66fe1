package dto

// ErrorResponseDTO is the shared error envelope for all endpoints.
type ErrorResponseDTO struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"Review must be at least 5 characters long"`
	Field   string `json:"field,omitempty" example:"review"`
}

// MessageResponseDTO is the shared success envelope for simple operations.
type MessageResponseDTO struct {
	Message string `json:"message" example:"template deleted"`
}
