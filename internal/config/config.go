package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/availgen/availgen/internal/paths"
	"github.com/availgen/availgen/internal/target"
	"github.com/availgen/availgen/internal/version"
)

// AppName names the tool in config paths and generated files.
const AppName = "availgen"

// DefaultCheckFunction is the runtime guard function emitted into generated
// check expressions when the config does not override check_function.
const DefaultCheckFunction = "availgen_check"

// SupportedVersion is the config schema version this build understands.
const SupportedVersion = 1

// Config is the top-level configuration.
type Config struct {
	Version       int                    `mapstructure:"version" yaml:"version"`
	CheckFunction string                 `mapstructure:"check_function" yaml:"check_function"`
	Targets       map[string]TargetRange `mapstructure:"targets" yaml:"targets"`
}

// TargetRange is the configured deployment window for a single platform.
// An absent bound leaves that side of the window open.
type TargetRange struct {
	Min *VersionSpec `mapstructure:"min" yaml:"min,omitempty"`
	Max *VersionSpec `mapstructure:"max" yaml:"max,omitempty"`
}

// VersionSpec is a structured version literal, spelled out by component.
// Version strings are never parsed.
type VersionSpec struct {
	Major uint64 `mapstructure:"major" yaml:"major"`
	Minor uint64 `mapstructure:"minor" yaml:"minor"`
	Patch uint64 `mapstructure:"patch" yaml:"patch,omitempty"`
}

// Value converts the literal into a version triple.
// A nil spec yields nil, leaving the corresponding bound open.
func (s *VersionSpec) Value() *version.Version {
	if s == nil {
		return nil
	}
	return &version.Version{Major: s.Major, Minor: s.Minor, Patch: s.Patch}
}

// DefaultTargets returns the deployment targets assumed when the
// configuration names none: macos and ios, unconstrained.
func DefaultTargets() map[string]TargetRange {
	return map[string]TargetRange{
		"macos": {},
		"ios":   {},
	}
}

// TargetWindows converts the configured ranges into the resolver's
// target set.
func (c *Config) TargetWindows() target.Targets {
	if len(c.Targets) == 0 {
		return nil
	}
	out := make(target.Targets, len(c.Targets))
	for name, r := range c.Targets {
		out[name] = target.Window{Min: r.Min.Value(), Max: r.Max.Value()}
	}
	return out
}

// Init wires up Viper: where to look for config.yaml, which environment
// variables override it, and the built-in defaults. Call it once at
// startup. Any previously loaded state is discarded.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if dir := os.Getenv("AVAILGEN_CONFIG_DIR"); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		for _, p := range paths.ConfigSearchPaths() {
			viper.AddConfigPath(p)
		}
	}

	viper.SetEnvPrefix("AVAILGEN")
	viper.AutomaticEnv()

	// Target defaults are applied after unmarshaling in Load: Viper drops
	// map-valued defaults whose leaves are empty, so unconstrained windows
	// cannot be registered here.
	viper.SetDefault("version", SupportedVersion)
	viper.SetDefault("check_function", DefaultCheckFunction)
}

// Load reads and validates the configuration. A non-empty path names the
// file to read; an empty path walks the search path and falls back to the
// defaults when nothing is found there.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case !errors.As(err, &notFound):
			return nil, fmt.Errorf("reading config file: %w", err)
		case path != "":
			return nil, fmt.Errorf("config file not found at %s: %w", path, err)
		}
		// Nothing on the search path. Defaults carry the run.
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if len(cfg.Targets) == 0 {
		cfg.Targets = DefaultTargets()
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, fmt.Errorf("validating config: %w", errors.Join(errs...))
	}

	return &cfg, nil
}
