package lendingclub

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Validation errors. These are returned before any request is sent.
var (
	ErrMalformedURLComponent    = errors.New("malformed url path component")
	ErrInvalidTransferFrequency = errors.New("invalid transfer frequency")
	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrNoOrders                 = errors.New("at least one order is required")
	ErrNoTransferIDs            = errors.New("at least one transfer ID is required")
	ErrPortfolioNameRequired    = errors.New("portfolio name is required")
	ErrConfigRequired           = errors.New("config is required")
	ErrAPIKeyRequired           = errors.New("API key is required")
	ErrInvestorIDRequired       = errors.New("investor ID is required for account operations")
)

// Decoding errors.
var (
	ErrNotJSONObject = errors.New("response body is not a JSON object")
	ErrNotJSONArray  = errors.New("response body is not a JSON array")
	ErrMissingField  = errors.New("field not present")
	ErrFieldType     = errors.New("field has unexpected type")
)

// MalformedURLComponentError is returned when a URL path segment contains
// characters outside [0-9a-zA-Z_-].
type MalformedURLComponentError struct {
	Component string
}

// Error implements the error interface.
func (e *MalformedURLComponentError) Error() string {
	return fmt.Sprintf("%s %q", ErrMalformedURLComponent, e.Component)
}

// Unwrap allows errors.Is(err, ErrMalformedURLComponent).
func (e *MalformedURLComponentError) Unwrap() error {
	return ErrMalformedURLComponent
}

// APIError is a single entry of the "errors" collection the API returns
// when it rejects a request.
type APIError struct {
	Field   string `json:"field,omitempty"   yaml:"field,omitempty"`
	Code    string `json:"code,omitempty"    yaml:"code,omitempty"`
	Message string `json:"message"           yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}

	return e.Message
}

// ErrorResponse is the structured error body of a rejected request.
type ErrorResponse struct {
	Errors []APIError `json:"errors"`
}

// BusinessError is returned when the API explicitly rejects an operation
// with a list of messages. The messages keep the order they were received in.
type BusinessError struct {
	Message string
	Errors  []APIError
}

// Error implements the error interface.
func (e *BusinessError) Error() string {
	parts := append([]string{e.Message}, e.Messages()...)

	return strings.Join(parts, " ")
}

// Messages returns the message of every contained error.
func (e *BusinessError) Messages() []string {
	messages := make([]string, 0, len(e.Errors))
	for _, apiErr := range e.Errors {
		messages = append(messages, apiErr.Message)
	}

	return messages
}

// HTTPError is returned for any non-2xx response that is not mapped to a
// BusinessError. Body holds the raw response body.
type HTTPError struct {
	StatusCode int
	Status     string
	Method     string
	URL        string
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	if len(e.Body) == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, status)
	}

	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.URL, status, strings.TrimSpace(string(e.Body)))
}

// ParseErrorResponse parses an error response from JSON.
func ParseErrorResponse(data []byte) (*ErrorResponse, error) {
	var errResp ErrorResponse

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	return &errResp, nil
}

// IsBusinessError checks if the error is a BusinessError.
func IsBusinessError(err error) bool {
	businessErr := &BusinessError{}

	return errors.As(err, &businessErr)
}

// IsNotFound checks if the error is an HTTP 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an HTTP 401.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an HTTP 403.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, statusCode int) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == statusCode
	}

	return false
}
