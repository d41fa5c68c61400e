package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/availgen/availgen/internal/version"
)

// Sentinel errors raised by Validate.
var (
	// ErrUnsupportedVersion indicates the config schema version is not
	// supported by this build.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrEmptyCheckFunction indicates check_function was set to an empty
	// string.
	ErrEmptyCheckFunction = errors.New("check_function must not be empty")

	// ErrInvalidPlatformName indicates a targets key that cannot name a
	// platform.
	ErrInvalidPlatformName = errors.New("invalid targets key")

	// ErrWindowInverted indicates a target window whose minimum exceeds
	// its maximum.
	ErrWindowInverted = errors.New("window min exceeds max")
)

// Validate checks every field of cfg and returns one error per finding,
// nil when the config is sound.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != SupportedVersion {
		errs = append(errs, &VersionError{Version: cfg.Version, Err: ErrUnsupportedVersion})
	}

	if cfg.CheckFunction == "" {
		errs = append(errs, ErrEmptyCheckFunction)
	}

	// Deterministic order for map-keyed findings
	names := make([]string, 0, len(cfg.Targets))
	for name := range cfg.Targets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, &PlatformError{Platform: name, Err: ErrInvalidPlatformName})
			continue
		}

		r := cfg.Targets[name]
		if r.Min == nil || r.Max == nil {
			continue
		}
		lo, hi := *r.Min.Value(), *r.Max.Value()
		if lo.Compare(hi) > 0 {
			errs = append(errs, &WindowError{
				Platform: name,
				Min:      lo,
				Max:      hi,
				Err:      ErrWindowInverted,
			})
		}
	}

	return errs
}

// VersionError reports an unsupported config schema version.
type VersionError struct {
	Version int
	Err     error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: %d", e.Err.Error(), e.Version)
}

func (e *VersionError) Unwrap() error {
	return e.Err
}

// PlatformError ties a validation failure to the targets key that caused it.
type PlatformError struct {
	Platform string
	Err      error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.Platform)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// WindowError represents an invalid deployment window for a platform.
type WindowError struct {
	Platform string
	Min      version.Version
	Max      version.Version
	Err      error
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("targets.%s: window min %s exceeds max %s", e.Platform, e.Min, e.Max)
}

func (e *WindowError) Unwrap() error {
	return e.Err
}
