// Package to turns the outcome of a pending operation into a plain
// (value, error) pair, so callers check the error inline instead of guarding
// the operation with recover.
//
//	cats, err := to.To(promise.Go(ctx, fetchCuteCats))
//	if err != nil {
//		// failed to load cute cats
//	}
//
// Whatever the operation fails with, the error slot always holds an error:
// errors are returned unchanged, any other rejection reason is converted to
// its string form and wrapped in a *RejectionError.
package to
