// Package config loads utilkit settings from TOML or YAML files.
//
// Package: config
// Title: Configuration Management
// Description: Reads a settings file (TOML via BurntSushi/toml, YAML via
//              gopkg.in/yaml.v3) into a map with dot-notation access.
//              Every key can be overridden from the environment:
//              log.level is read from UTILKIT_LOG_LEVEL.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-14 v0.2.0: Typed Settings for the CLI, file discovery reduced to lookup
//
// Usage:
//
//	path, err := config.FindConfigFile(config.DefaultDiscoveryOptions())
//	if err == nil {
//		cfg, err := config.Load(path)
//		...
//	}
//	settings, err := config.SettingsFrom(cfg)
//	logger := settings.NewLogger("utilkit", os.Stderr)
package config
