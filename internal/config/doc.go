// Package config provides user configuration management for netscen.
//
// This package manages a YAML-based configuration file that selects the
// storage backend for the scenario record and the logging setup. The
// configuration follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/netscen/config.yaml or $HOME/.config/netscen/config.yaml
//   - macOS: $HOME/.config/netscen/config.yaml
//   - Windows: %LOCALAPPDATA%\netscen\config.yaml
//
// NETSCEN_CONFIG_DIR replaces the directory on every platform.
//
// # Precedence
//
// Values are resolved in this order, later wins:
//  1. Built-in defaults (file backend in <configdir>/records, key networkScenarioData)
//  2. The configuration file
//  3. NETSCEN_STORAGE_BACKEND, NETSCEN_STORAGE_PATH, NETSCEN_STORAGE_KEY, NETSCEN_LOG_LEVEL
//  4. Command-line flags (applied by the CLI)
//
// # Usage Example
//
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	kv, err := cfg.OpenStore()
//	if err != nil {
//	    return err
//	}
//	defer kv.Close()
package config
