package scholar

import (
	"errors"
	"fmt"
)

// Common errors returned by the Scholar client.
var (
	// ErrNotFound indicates the profile or citation does not exist.
	ErrNotFound = errors.New("not found on Google Scholar")

	// ErrRateLimited indicates Scholar is throttling or captcha-walling us.
	ErrRateLimited = errors.New("Google Scholar rate limit exceeded")

	// ErrNetworkError indicates a network connectivity issue.
	ErrNetworkError = errors.New("network error communicating with Google Scholar")

	// ErrInvalidResponse indicates a page that could not be parsed.
	ErrInvalidResponse = errors.New("invalid response from Google Scholar")
)

// HTTPError represents a non-2xx response from Google Scholar.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Google Scholar HTTP %d (%s)", e.StatusCode, e.URL)
}

// IsNotFound returns true if the error indicates a missing profile or citation.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 404
	}
	return false
}

// IsRateLimited returns true if the error indicates throttling.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == 429
	}
	return false
}
