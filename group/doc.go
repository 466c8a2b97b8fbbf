// Package group builds keyed collections of independent channels.
//
// Build folds a key list into an immutable Group in one pass, calling the
// supplied constructor once per key. Members share nothing: subscribing to
// one has no effect on any other.
//
// Repeated keys are handled by an explicit Policy:
//   - Reject (default): Build fails with errors.ErrDuplicateKey
//   - KeepLast: the later occurrence wins and a warning is logged
//
// The notify and custom packages wrap Build with flavor-specific NewGroup
// functions; use Build directly for other member types.
package group
