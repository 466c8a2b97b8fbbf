package errors

import "errors"

// IsDuplicateKey checks if an error came from a repeated group key.
func IsDuplicateKey(err error) bool {
	return err != nil && errors.Is(err, ErrDuplicateKey)
}

// IsStatusError checks if an error is about a status value, fixed or custom.
func IsStatusError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrUnknownStatus) || errors.Is(err, ErrUndeclaredStatus)
}

// IsConfigError checks if an error is manifest-related.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrInvalidManifest)
}

// IsNotFound checks if an error is a missed group or channel lookup.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrGroupNotFound) || errors.Is(err, ErrChannelNotFound)
}
