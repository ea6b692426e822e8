package api

import (
	"errors"
	"fmt"
)

// Request failures fall into exactly one of three kinds so callers can
// branch on them: TransportError (no response at all), TimeoutError (the
// fixed deadline elapsed) and HTTPError (the server answered with a non-2xx
// status). None of them trigger retries or credential invalidation here;
// that is left to callers.

// TransportError reports that no response was received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("no response from server: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TimeoutError reports that the request exceeded the client's fixed
// round-trip deadline.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// HTTPError reports a non-success status. Body keeps the raw response so
// callers can surface server-side messages.
type HTTPError struct {
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	body := e.Body
	if len(body) > 256 {
		body = body[:256]
	}
	return fmt.Sprintf("server returned status %d: %s", e.Status, body)
}

// IsStatus reports whether err is an HTTPError with the given status code.
func IsStatus(err error, status int) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Status == status
}
