// Package config provides application configuration for debloater.
//
// The configuration is a YAML file that tells debloater where to find adb,
// which catalog to load and how to log. It also holds optional per-device
// nicknames. The file follows OS-specific conventions for its location.
//
// Settings-screen values (expert mode, sort order, ...) are intentionally not
// stored here; they reset on every run.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/debloater/config.yaml or $HOME/.config/debloater/config.yaml
//   - macOS: $HOME/.config/debloater/config.yaml
//   - Windows: %LOCALAPPDATA%\debloater\config.yaml
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := adb.NewClient(adb.Config{Path: cfg.ADB.Path, Timeout: cfg.ADBTimeout()})
//
// # Thread Safety
//
// File operations are protected by a mutex and writes are atomic (temp file
// plus rename).
package config
