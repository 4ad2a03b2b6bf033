// Package config provides user preferences for the rpmlog tool.
//
// Preferences live in a small YAML file and supply defaults for the decode
// flags. Flags given on the command line always win.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/rpmlog/config.yaml or $HOME/.config/rpmlog/config.yaml
//   - macOS: $HOME/.config/rpmlog/config.yaml
//   - Windows: %LOCALAPPDATA%\rpmlog\config.yaml
//
// # File Format
//
//	version: 1
//	preferences:
//	  default_target: "8960"
//	  raw_timestamp: false
//	  high_precision: true
//	  diagnostics: stderr
//	profiles: /home/me/lab-targets.yaml
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    return err
//	}
//	target := registry.Preferences.DefaultTarget
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
