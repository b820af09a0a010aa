package rte

import "fmt"

// AuthError is returned when the token endpoint answers with a non-2xx status.
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("rte auth failed: status %d, body: %s", e.Status, e.Body)
}

// FetchError is returned when the forecast endpoint answers with a non-2xx status.
// It aborts the whole range fetch; no partial results are kept.
type FetchError struct {
	Status int
	Body   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("rte fetch failed: status %d, body: %s", e.Status, e.Body)
}
