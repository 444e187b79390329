package wizard

import (
	"errors"

	"github.com/mark3labs/sitewizard/internal/site"
)

// ErrBusy is returned when an operation is triggered while its previous
// request is still outstanding.
var ErrBusy = errors.New("request already in progress")

// CallState is the lifecycle of one remote operation.
type CallState int

const (
	CallIdle CallState = iota
	CallInFlight
	CallSucceeded
	CallFailed
)

func (s CallState) String() string {
	switch s {
	case CallIdle:
		return "idle"
	case CallInFlight:
		return "in flight"
	case CallSucceeded:
		return "succeeded"
	case CallFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Call tracks a single remote operation. At most one request per Call is
// outstanding at a time.
type Call struct {
	name  string
	state CallState
	err   error
}

func newCall(name string) *Call {
	return &Call{name: name}
}

// State returns the current lifecycle state.
func (c *Call) State() CallState {
	return c.state
}

// Busy reports whether a request is outstanding.
func (c *Call) Busy() bool {
	return c.state == CallInFlight
}

// Err returns the error of the last failed request.
func (c *Call) Err() error {
	if c.state != CallFailed {
		return nil
	}
	return c.err
}

// Begin marks the call in flight.
func (c *Call) Begin() error {
	if c.state == CallInFlight {
		return site.Invalid(c.name, ErrBusy)
	}
	c.state = CallInFlight
	c.err = nil
	return nil
}

// Finish records the outcome of the outstanding request.
func (c *Call) Finish(err error) {
	if err != nil {
		c.state = CallFailed
		c.err = err
		return
	}
	c.state = CallSucceeded
	c.err = nil
}
