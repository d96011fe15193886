// Package apierror provides the standard response envelope for the API.
// Every endpoint answers { success, data?, message? } so the SPA can treat
// all responses uniformly and internal details (stack traces, SQL errors)
// never reach the client.
package apierror

// Envelope is the canonical JSON body for every response.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// New builds a failure envelope with a human-readable message.
func New(msg string) Envelope {
	return Envelope{Success: false, Message: msg}
}

// OK builds a success envelope wrapping the payload.
func OK(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Success: false, Message: "Error de validacion", Fields: fields}
}
