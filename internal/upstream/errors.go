package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError conveys an upstream rejection: a non-2xx status, or a 2xx
// envelope carrying success:false. Message holds the server-provided
// text and may be empty; callers apply their own fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream rejected (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream rejected (%d)", e.Status)
}

// IsAuth reports whether the error is an upstream 401 or 403.
func IsAuth(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden
}

// Message extracts the server-provided message, if any.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
