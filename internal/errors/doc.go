// Package errors carries the error conventions of the availgen CLI.
//
// Construction and inspection go through thin wrappers around
// github.com/cockroachdb/errors, so every error built here carries a
// stack trace without call sites needing a second import. On top of
// that the package defines the sentinel errors commands dispatch on
// and the ExitError type that maps failures to process exit codes.
//
// # Sentinels
//
// Dispatch on a condition with [Is]:
//
//	if errors.Is(err, errors.ErrUnsupportedFormat) {
//	    // pick a different serialization
//	}
//
// # Exit codes
//
//   - ExitSuccess (0): the command did what was asked
//   - ExitUser (1): bad input, declarations or configuration
//   - ExitSystem (2): the environment failed, I/O or permissions
//
// Commands return an [ExitError] and main recovers the code with [As]:
//
//	var ee *errors.ExitError
//	if errors.As(err, &ee) {
//	    os.Exit(ee.Code)
//	}
package errors
