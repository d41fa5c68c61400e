package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWrapHelpers(t *testing.T) {
	t.Run("wrap nil is nil", func(t *testing.T) {
		if got := Wrap(nil, "context"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
		if got := Wrapf(nil, "context %d", 1); got != nil {
			t.Errorf("Wrapf(nil) = %v, want nil", got)
		}
	})

	t.Run("wrap prefixes the message", func(t *testing.T) {
		err := Wrapf(ErrNoDeclarations, "reading %q", "decls.yaml")
		want := `reading "decls.yaml": no declarations found`
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !Is(err, ErrNoDeclarations) {
			t.Error("Is() lost the sentinel through Wrapf")
		}
	})

	t.Run("newf formats", func(t *testing.T) {
		err := Newf("platform %q has no window", "watchos")
		if got, want := err.Error(), `platform "watchos" has no window`; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("join drops nils", func(t *testing.T) {
		if err := Join(nil, nil); err != nil {
			t.Errorf("Join(nil, nil) = %v, want nil", err)
		}
		err := Join(ErrMissingName, nil, ErrUnknownPlatform)
		if !Is(err, ErrMissingName) || !Is(err, ErrUnknownPlatform) {
			t.Error("Join() lost a sentinel")
		}
	})

	t.Run("interoperates with the standard library", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", Wrap(ErrMissingName, "inner"))
		if !stderrors.Is(err, ErrMissingName) {
			t.Error("stdlib errors.Is() does not see the sentinel")
		}
	})
}

func TestExitError(t *testing.T) {
	t.Run("message comes from the wrapped error", func(t *testing.T) {
		tests := []struct {
			name string
			err  *ExitError
			want string
		}{
			{"sentinel", NewExitError(ErrUnknownPlatform, ExitUser), "unknown platform"},
			{"wrapped", NewExitError(Wrap(ErrNoDeclarations, "loading decls"), ExitUser), "loading decls: no declarations found"},
			{"nil error", NewExitError(nil, ExitUser), "exit code 1"},
			{"success code", NewExitError(New("unexpected"), ExitSuccess), "unexpected"},
		}
		for _, tt := range tests {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("%s: Error() = %q, want %q", tt.name, got, tt.want)
			}
		}
	})

	t.Run("unwraps to the sentinel", func(t *testing.T) {
		err := NewExitError(Wrap(ErrMissingName, "reading declarations"), ExitUser)
		if !Is(err, ErrMissingName) {
			t.Error("Is() does not reach the sentinel through ExitError")
		}
		if Is(err, ErrUnknownPlatform) {
			t.Error("Is() matched a sentinel that is not in the chain")
		}
		if Is(NewExitError(nil, ExitUser), ErrMissingName) {
			t.Error("Is() matched through a nil underlying error")
		}
	})

	t.Run("recoverable with As through stdlib wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("command failed: %w", NewExitError(ErrUnsupportedFormat, ExitSystem))
		var exitErr *ExitError
		if !As(wrapped, &exitErr) {
			t.Fatal("As() did not find the ExitError")
		}
		if exitErr.Code != ExitSystem {
			t.Errorf("Code = %d, want %d", exitErr.Code, ExitSystem)
		}
	})

	t.Run("plain errors are not exit errors", func(t *testing.T) {
		var exitErr *ExitError
		if As(ErrUnknownPlatform, &exitErr) {
			t.Error("As() found an ExitError in a bare sentinel")
		}
	})
}

func TestConstructors(t *testing.T) {
	base := New("boom")
	tests := []struct {
		name           string
		err            *ExitError
		wantCode       int
		wantSuggestion string
	}{
		{"NewExitError", NewExitError(base, 3), 3, ""},
		{"NewUserError", NewUserError(base, "check input"), ExitUser, "check input"},
		{"NewSystemError", NewSystemError(base, "check permissions"), ExitSystem, "check permissions"},
		{"NewConfigError", NewConfigError(base), ExitUser, "Run: availgen targets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Err != base {
				t.Errorf("Err = %v, want %v", tt.err.Err, base)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Suggestion != tt.wantSuggestion {
				t.Errorf("Suggestion = %q, want %q", tt.err.Suggestion, tt.wantSuggestion)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	if ExitSuccess != 0 || ExitUser != 1 || ExitSystem != 2 {
		t.Errorf("exit codes = %d, %d, %d; want 0, 1, 2", ExitSuccess, ExitUser, ExitSystem)
	}
}

func TestSentinelMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrMissingName, "declaration name is required"},
		{ErrUnknownPlatform, "unknown platform"},
		{ErrNoDeclarations, "no declarations found"},
		{ErrUnsupportedFormat, "unsupported format"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorChain(t *testing.T) {
	err := NewUserError(
		Wrapf(Wrap(ErrUnsupportedFormat, `manifest format "ini"`), "writing %q", "out.ini"),
		"Use --format yaml, json or toml")

	if !Is(err, ErrUnsupportedFormat) {
		t.Error("Is() should find the sentinel through the chain")
	}

	var exitErr *ExitError
	if !As(err, &exitErr) {
		t.Fatal("As() should find the ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}

	want := `writing "out.ini": manifest format "ini": unsupported format`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
