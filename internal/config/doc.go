// Package config provides configuration management for the availgen CLI.
//
// This package handles loading and validating the availgen tool's own
// configuration file: the schema version, the runtime check function name,
// and the deployment target windows the resolver evaluates against.
//
// # The config file
//
// The configuration file is named config.yaml and is searched for in the
// working directory first, then in the user-level config directory
// (~/.config/availgen/ on Linux). The AVAILGEN_CONFIG_DIR environment
// variable replaces the search path with a single directory. The file uses
// YAML with the following structure:
//
//	version: 1
//	check_function: availgen_check
//	targets:
//	  ios:
//	    min: {major: 12}
//	    max: {major: 15, minor: 4}
//	  macos:
//	    min: {major: 10, minor: 15}
//
// Version bounds are always structured literals; version strings are never
// parsed. A target with neither bound is listed but does not constrain
// resolution.
//
// # Loading
//
// Call [Init] once at startup, then [Load] with an optional explicit path:
//
//	config.Init()
//	cfg, err := config.Load(cfgFile)
//	if err != nil {
//	    return err
//	}
//
// With an empty path, Load falls back to defaults when no file is found:
// schema version 1, check function "availgen_check", and the macos and ios
// platforms unconstrained.
//
// # Validation
//
// Load validates on the way in and reports every finding at once. For
// configs built in code, [Validate] runs the same checks:
//
//	if errs := config.Validate(cfg); len(errs) > 0 {
//	    return errors.Join(errs...)
//	}
package config
