package errs

import "fmt"

// Kind categorizes application errors for HTTP status mapping.
type Kind int

const (
	// Unknown represents an unclassified error.
	Unknown Kind = iota
	// InvalidInput indicates the request was malformed (HTTP 400).
	InvalidInput
	// NotFound indicates the requested report does not exist or has
	// expired (HTTP 404).
	NotFound
	// Unreachable indicates a target URL could not be reached (HTTP 502).
	Unreachable
	// Timeout indicates the analysis took too long (HTTP 504).
	Timeout
	// ParsingFailed indicates a response could not be parsed (HTTP 500).
	ParsingFailed
)

// AppError carries a category, user message, and original cause.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}
