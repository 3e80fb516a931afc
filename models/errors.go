package models

import "fmt"

// Error codes used in API responses and internal error handling.
const (
	ErrCodeFetch        = "FETCH_FAILED"
	ErrCodeParseEmpty   = "PARSE_EMPTY"
	ErrCodeExtraction   = "EXTRACTION_FAILED"
	ErrCodeNoResults    = "NO_RESULTS"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorDetail is the structured error in API responses.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SearchError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type SearchError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *SearchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// NewSearchError creates a new SearchError.
func NewSearchError(code, message string, err error) *SearchError {
	return &SearchError{Code: code, Message: message, Err: err}
}

// ToDetail converts an internal error to an API-facing ErrorDetail.
func (e *SearchError) ToDetail() *ErrorDetail {
	return &ErrorDetail{Code: e.Code, Message: e.Message}
}
