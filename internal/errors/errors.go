package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes returned to the operating system.
const (
	// ExitSuccess means the command did what was asked.
	ExitSuccess = 0

	// ExitUser means the user gave bad input: flags, declarations, config.
	ExitUser = 1

	// ExitSystem means the environment failed: I/O, permissions.
	ExitSystem = 2
)

// Sentinel errors for failure conditions that callers dispatch on.
var (
	// ErrMissingName indicates a declaration has no name.
	ErrMissingName = errors.New("declaration name is required")

	// ErrUnknownPlatform indicates a platform name that no target window covers.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrNoDeclarations indicates an input carried nothing to resolve.
	ErrNoDeclarations = errors.New("no declarations found")

	// ErrUnsupportedFormat indicates a manifest or declaration format the
	// tool does not produce or consume.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// New constructs an error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Newf constructs an error from a format string.
func Newf(format string, args ...any) error {
	return errors.Newf(format, args...)
}

// Wrap annotates err with a message prefix. Returns nil when err is nil.
func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

// Wrapf annotates err with a formatted message prefix. Returns nil when err
// is nil.
func Wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches reference.
func Is(err, reference error) bool {
	return errors.Is(err, reference)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join combines errs into a single error, discarding nils. Returns nil when
// every input is nil.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// ExitError pairs an error with the process exit code it should produce,
// plus an optional suggestion printed under the error message.
type ExitError struct {
	// Err is the failure being reported. Nil when only the code matters.
	Err error

	// Code is handed to os.Exit by main.
	Code int

	// Suggestion tells the user what to try next. Empty means no advice.
	Suggestion string
}

// NewExitError pairs err with an exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError builds an ExitUser error with a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError builds an ExitSystem error with a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError flags a configuration problem, pointing the user at the
// targets command to see what the tool thinks is configured.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: availgen targets",
	}
}

// Error reports the underlying error's message, or the exit code when the
// underlying error is nil.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap exposes the underlying error to Is and As.
func (e *ExitError) Unwrap() error {
	return e.Err
}
