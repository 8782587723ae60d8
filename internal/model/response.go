package model

// ErrorResponse is the envelope for all non-2xx payloads.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

func NewErrorResponse(message, detail string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message, Detail: detail}
}
