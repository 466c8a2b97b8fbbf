package notify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	nkerrors "github.com/randalmurphal/notifykit/errors"
	"github.com/randalmurphal/notifykit/sink"
)

// Status is the lifecycle state carried by a fixed-state message.
type Status string

// Status constants.
const (
	StatusSuccess    Status = "SUCCESS"
	StatusFailure    Status = "FAILURE"
	StatusInProgress Status = "IN_PROGRESS"
	StatusIdle       Status = "IDLE"
)

var titleCaser = cases.Title(language.English)

// Statuses returns the four statuses in declaration order.
func Statuses() []Status {
	return []Status{StatusSuccess, StatusFailure, StatusInProgress, StatusIdle}
}

// ParseStatus converts a label to a Status.
func ParseStatus(label string) (Status, error) {
	s := Status(label)
	if !s.Valid() {
		return "", nkerrors.NewUnknownStatusError(label)
	}
	return s, nil
}

func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the four statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusFailure, StatusInProgress, StatusIdle:
		return true
	}
	return false
}

// Title returns a human-readable label, e.g. "In Progress".
func (s Status) Title() string {
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(string(s)), "_", " "))
}

// Severity maps the status onto a sink severity.
func (s Status) Severity() string {
	switch s {
	case StatusFailure:
		return sink.SeverityError
	case StatusIdle:
		return sink.SeverityDebug
	default:
		return sink.SeverityInfo
	}
}
