package dto

// ErrorResponse cuerpo de error HTTP: {success:false, message, details?}.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse respuesta de operaciones sin item (ej. borrado lógico).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
