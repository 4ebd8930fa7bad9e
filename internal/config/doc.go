// Package config provides user configuration management for viewloop.
//
// This package manages a YAML-based configuration file holding preferences
// for the demo application: logging level and destination, and the view to
// start on. The configuration follows OS-specific conventions for storage
// location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/viewloop/config.yaml or $HOME/.config/viewloop/config.yaml
//   - macOS: $HOME/.config/viewloop/config.yaml
//   - Windows: %LOCALAPPDATA%\viewloop\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.StartView = "editor"
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global config uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
