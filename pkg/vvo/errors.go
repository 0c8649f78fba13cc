package vvo

import "fmt"

// UpstreamError is returned for any failed call to the upstream API,
// whether a non-2xx status or a transport failure.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream request failed: %s", e.Err)
	}

	return fmt.Sprintf("upstream returned HTTP %d", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
