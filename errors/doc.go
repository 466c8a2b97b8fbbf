// Package errors defines the error values returned by notifykit.
//
// Channel dispatch itself never fails: unknown statuses are absorbed
// silently. Errors only surface from the edges of the library:
//
//   - ErrDuplicateKey: a group was built with a repeated key under the Reject policy
//   - ErrUnknownStatus: a label does not name one of the four fixed statuses
//   - ErrUndeclaredStatus: a strict custom channel saw a status outside its declared set
//   - ErrInvalidManifest: a group manifest failed to parse or validate
//   - ErrGroupNotFound, ErrChannelNotFound: hub lookups missed
//
// Errors carrying extra context are returned as *Error, which unwraps to the
// sentinel:
//
//	g, err := notify.NewGroup[string, Task](keys)
//	if errors.IsDuplicateKey(err) {
//	    var e *errors.Error
//	    if stderrors.As(err, &e) {
//	        fmt.Println(e.Details)
//	    }
//	}
package errors
