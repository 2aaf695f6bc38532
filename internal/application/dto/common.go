package dto

import "time"

// APIResponse is the success envelope returned by every endpoint.
type APIResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

// OK builds a success envelope with the given message and payload.
func OK(message string, data any) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// ErrorResponse is the failure envelope returned by every endpoint.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Error builds a failure envelope with the given code and message.
func Error(code, message string) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		ErrorCode: code,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// PageRequest carries pagination for list endpoints.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage applies defaults when Limit/Offset are unset.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
