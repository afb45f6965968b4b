package errors

import "net/http"

// Kind identifies a domain error variant.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindConflict     Kind = "CONFLICT"
	KindNotFound     Kind = "NOT_FOUND"
	KindExpired      Kind = "EXPIRED"
	KindOutbid       Kind = "OUTBID"
	KindPersistence  Kind = "PERSISTENCE"
)

// APIError is a domain error carrying an HTTP status code. It propagates
// unchanged to the boundary, where it is rendered as {"error": message}.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToErrorResponse converts an APIError to its wire shape.
func (e *APIError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// Validation reports a malformed or missing input field.
func Validation(message string) *APIError {
	return &APIError{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

// Unprocessable reports an input that is present but cannot be interpreted.
func Unprocessable(message string) *APIError {
	return &APIError{Kind: KindValidation, Status: http.StatusUnprocessableEntity, Message: message}
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(message string) *APIError {
	return &APIError{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: message}
}

// Conflict reports a duplicate unique key, e.g. an already registered email.
func Conflict(message string) *APIError {
	return &APIError{Kind: KindConflict, Status: http.StatusBadRequest, Message: message}
}

// NotFound reports a missing entity or a malformed identifier.
func NotFound(message string) *APIError {
	return &APIError{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// Expired reports an auction past its end time.
func Expired(message string) *APIError {
	return &APIError{Kind: KindExpired, Status: http.StatusBadRequest, Message: message}
}

// Outbid reports a bid that lost the conditional update to a concurrent
// higher bid. Kept distinct from Validation so callers can decide to retry.
func Outbid(message string) *APIError {
	return &APIError{Kind: KindOutbid, Status: http.StatusConflict, Message: message}
}

// Persistence reports a store failure. The message must stay generic;
// internal detail is logged, never returned.
func Persistence(message string) *APIError {
	return &APIError{Kind: KindPersistence, Status: http.StatusInternalServerError, Message: message}
}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == kind
}

// FromError maps any error to an APIError. Domain errors pass through;
// everything else becomes a generic persistence failure.
func FromError(err error) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return Persistence("internal server error")
}
