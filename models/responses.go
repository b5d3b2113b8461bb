package models

import "github.com/google/uuid"

// IDResponse is the body returned by mutating user endpoints: it carries
// only the identifier of the affected record.
type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

// MessageResponse is the generic single-message body used for client
// errors such as "User not found.".
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body returned for unexpected server-side failures.
// Error carries the stringified cause for diagnostics.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SignupResponse is the body returned after a successful signup.
type SignupResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// ConflictResponse is the body returned when a signup attempt collides
// with an existing account.
type ConflictResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// LoginResponse is the body returned after a successful login.
type LoginResponse struct {
	Token string    `json:"token"`
	ID    uuid.UUID `json:"id"`
}

// ValidationMessage is a single human-readable schema violation in the
// form "<field> is <violation>".
type ValidationMessage struct {
	Message string `json:"message"`
}

// ValidationResponse is the body returned when a request fails schema
// validation. Errors lists every violated field.
type ValidationResponse struct {
	Message string              `json:"message"`
	Errors  []ValidationMessage `json:"errors"`
}
