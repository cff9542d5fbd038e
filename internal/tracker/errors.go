package tracker

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrServiceUnavailable wraps every transport-level failure: refused
	// connections, DNS errors, timeouts.
	ErrServiceUnavailable = errors.New("analysis service unavailable")
	ErrMalformedResponse  = errors.New("malformed analysis service response")
)

// APIError is a response the service answered with an error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("analysis service: %d %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is the service rejecting the bearer
// token or the credentials.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Message returns the text to show a user for err: the service's own message
// when it sent one, a generic line otherwise.
func Message(err error) string {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return http.StatusText(apiErr.Status)
	case errors.Is(err, ErrServiceUnavailable):
		return "Cannot connect to the analysis service."
	}
	return "Request to the analysis service failed."
}
