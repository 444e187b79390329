package site

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by ValidationError.
var (
	ErrEmpty          = errors.New("cannot be empty")
	ErrDuplicateField = errors.New("field name already exists")
	ErrUnknownField   = errors.New("no such field")
)

// ValidationError is raised before any network call when local input is
// missing or out of range. It never changes wizard state.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + " " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Invalid builds a ValidationError for field.
func Invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// RemoteError describes a failed round trip to the site service: transport
// failure, non-success status, malformed payload or a response that reports
// failure itself.
type RemoteError struct {
	Op      string // analyze, test or create
	Status  int    // HTTP status, 0 when no response was received
	Message string // Message reported by the service, verbatim
	Err     error  // Underlying cause
}

func (e *RemoteError) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%s request failed (%d): %s", e.Op, e.Status, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%s request failed: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s request failed: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s request failed with status %d", e.Op, e.Status)
	}
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

var genericMessages = map[string]string{
	"analyze": "Site analysis failed. Check the URL and try again.",
	"test":    "Configuration test failed. Check the test URL and try again.",
	"create":  "Could not create the site. Try again.",
}

// UserMessage returns the single line shown to the operator for err.
// Remote failures surface the service's own message when it sent one and a
// generic per-operation message otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var remote *RemoteError
	if errors.As(err, &remote) {
		if remote.Message != "" {
			return remote.Message
		}
		if msg, ok := genericMessages[remote.Op]; ok {
			return msg
		}
		return "Request failed. Try again."
	}

	var invalid *ValidationError
	if errors.As(err, &invalid) {
		return invalid.Error()
	}

	return err.Error()
}
