package errors

import "errors"

// Sentinel errors. Compare with errors.Is.
var (
	// ErrDuplicateKey indicates a group key appeared more than once.
	ErrDuplicateKey = errors.New("duplicate group key")

	// ErrUnknownStatus indicates a label outside the fixed status set.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrUndeclaredStatus indicates a status outside a custom channel's declared states.
	ErrUndeclaredStatus = errors.New("undeclared status")

	// ErrInvalidManifest indicates a group manifest is malformed.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrGroupNotFound indicates no group is registered under the name.
	ErrGroupNotFound = errors.New("group not found")

	// ErrChannelNotFound indicates the group has no channel for the key.
	ErrChannelNotFound = errors.New("channel not found")
)
