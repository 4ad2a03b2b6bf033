package config

import (
	"fmt"

	"github.com/muurk/rpmlog/internal/target"
)

// CurrentVersion is the config schema version this build reads and writes
const CurrentVersion = 1

// Diagnostics destinations
const (
	DiagnosticsStderr = "stderr"
	DiagnosticsStdout = "stdout"
)

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`

	// Profiles is an optional target profile file merged over the built-in
	// chipset tables
	Profiles string `yaml:"profiles,omitempty"`
}

// Preferences holds defaults for the decode flags.
type Preferences struct {
	DefaultTarget string `yaml:"default_target"` // Chipset id used when --target is not given
	RawTimestamp  bool   `yaml:"raw_timestamp"`  // Print raw hex tick counts
	HighPrecision bool   `yaml:"high_precision"` // Append high-precision deltas
	Diagnostics   string `yaml:"diagnostics"`    // Where warnings and errors go: stderr or stdout
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() *Preferences {
	return &Preferences{
		DefaultTarget: target.DefaultID,
		Diagnostics:   DiagnosticsStderr,
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
	}
}

// Validate checks field values.
func (r *Registry) Validate() error {
	if r.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", r.Version, CurrentVersion)
	}
	if r.Preferences == nil {
		return nil
	}
	switch r.Preferences.Diagnostics {
	case "", DiagnosticsStderr, DiagnosticsStdout:
	default:
		return fmt.Errorf("invalid diagnostics destination %q (expected %s or %s)",
			r.Preferences.Diagnostics, DiagnosticsStderr, DiagnosticsStdout)
	}
	return nil
}

// fillDefaults sets empty fields to their defaults.
func (r *Registry) fillDefaults() {
	if r.Preferences == nil {
		r.Preferences = DefaultPreferences()
		return
	}
	if r.Preferences.DefaultTarget == "" {
		r.Preferences.DefaultTarget = target.DefaultID
	}
	if r.Preferences.Diagnostics == "" {
		r.Preferences.Diagnostics = DiagnosticsStderr
	}
}
