package errors

import (
	"fmt"
	"strings"
)

// Error wraps a sentinel with a readable message and an optional hint.
type Error struct {
	// Err is the underlying sentinel
	Err error

	// Message describes what went wrong
	Message string

	// Suggestion is an actionable hint for the caller
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}

	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewDuplicateKeyError reports key as repeated at position index.
func NewDuplicateKeyError(key any, index int) error {
	return &Error{
		Err:        ErrDuplicateKey,
		Message:    fmt.Sprintf("duplicate group key %v", key),
		Details:    fmt.Sprintf("repeated at index %d", index),
		Suggestion: "remove the repeated key or build the group with the KeepLast policy",
	}
}

// NewUnknownStatusError reports a label outside the fixed status set.
func NewUnknownStatusError(label string) error {
	return &Error{
		Err:        ErrUnknownStatus,
		Message:    fmt.Sprintf("unknown status %q", label),
		Suggestion: "use one of SUCCESS, FAILURE, IN_PROGRESS, IDLE",
	}
}

// NewUndeclaredStatusError reports status as missing from declared.
func NewUndeclaredStatusError(status string, declared []string) error {
	return &Error{
		Err:     ErrUndeclaredStatus,
		Message: fmt.Sprintf("status %q is not declared", status),
		Details: "declared: " + strings.Join(declared, ", "),
	}
}

// WrapManifestError wraps a manifest parse or validation failure.
func WrapManifestError(err error, source string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Err:     ErrInvalidManifest,
		Message: "invalid manifest " + source,
		Details: err.Error(),
	}
}

// NewNotFoundError reports a missed hub lookup. sentinel is
// ErrGroupNotFound or ErrChannelNotFound.
func NewNotFoundError(sentinel error, name string) error {
	return &Error{
		Err:     sentinel,
		Message: fmt.Sprintf("%v: %s", sentinel, name),
	}
}
