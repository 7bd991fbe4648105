package paystack

import (
	"encoding/json"
	"fmt"
)

// ValidationError is returned by a request builder's Build method when a
// required field is missing or a field fails a constraint. It never reaches
// the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Message)
}

// TransportError wraps network-level failures (connection refused, DNS,
// timeout). It is distinct from APIError: the request never produced an HTTP
// status line.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("paystack: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is returned when Paystack responds with a non-2xx status. The
// structured error envelope is preserved verbatim alongside the raw body.
type APIError struct {
	StatusCode int
	Status     bool
	Message    string
	Raw        []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("paystack: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("paystack: unexpected status %d", e.StatusCode)
}

// DecodeError is returned when a response body does not match the expected
// shape.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("paystack: decode %s response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// newAPIError parses the {status, message} error envelope out of a non-2xx
// body. A body that is not JSON still yields a usable error with Raw set.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Raw: body}

	var envelope struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Status = envelope.Status
		apiErr.Message = envelope.Message
	}
	return apiErr
}
