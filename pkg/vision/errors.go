package vision

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotConfigured means no API credential is present. AnalyzeStyle
	// fails fast with this before any network attempt.
	ErrNotConfigured = errors.New("style service is not configured")

	// ErrRateLimited maps the remote side's HTTP 429, distinct from the
	// local GateError so the UI can suggest the right wait.
	ErrRateLimited = errors.New("request limit reached, please retry in a few moments")

	// ErrInvalidResponse means the remote reply carried no parsable
	// structured payload.
	ErrInvalidResponse = errors.New("invalid response from style service")
)

// GateError reports a call rejected by the local throttle gate before any
// network I/O happened.
type GateError struct {
	Wait time.Duration
}

func (e *GateError) Error() string {
	return fmt.Sprintf("please wait %d seconds before retrying", e.WaitSeconds())
}

// WaitSeconds is the remaining wait rounded up to whole seconds.
func (e *GateError) WaitSeconds() int {
	ms := e.Wait.Milliseconds()
	secs := ms / 1000
	if ms%1000 != 0 {
		secs++
	}
	return int(secs)
}
