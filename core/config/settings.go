// File: settings.go
// Title: Typed Settings
// Description: Typed view over a Config holding the values the utilkit
//              command line tool reads: log level, log format and JSON
//              output indentation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.2.0: Initial implementation

package config

import (
	"io"

	mdwerror "github.com/msto63/utilkit/core/error"
	mdwlog "github.com/msto63/utilkit/core/log"
)

// Settings keys, usable with Config getters and as UTILKIT_* overrides
const (
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyJSONIndent = "output.indent"
)

// Settings holds the validated settings of a utilkit invocation
type Settings struct {
	LogLevel   mdwlog.Level
	LogFormat  mdwlog.Format
	JSONIndent int
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		LogLevel:   mdwlog.LevelWarn,
		LogFormat:  mdwlog.FormatText,
		JSONIndent: 0,
	}
}

// SettingsFrom reads Settings from cfg. A nil cfg yields DefaultSettings
// with environment overrides applied.
func SettingsFrom(cfg *Config) (Settings, error) {
	if cfg == nil {
		cfg = Empty(LoadOptions{})
	}

	settings := DefaultSettings()

	if raw := cfg.GetString(KeyLogLevel); raw != "" {
		level, err := mdwlog.ParseLevel(raw)
		if err != nil {
			return settings, mdwerror.Wrap(err, "invalid log level").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.SettingsFrom").
				WithDetail("key", KeyLogLevel)
		}
		settings.LogLevel = level
	}

	if raw := cfg.GetString(KeyLogFormat); raw != "" {
		format, err := mdwlog.ParseFormat(raw)
		if err != nil {
			return settings, mdwerror.Wrap(err, "invalid log format").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.SettingsFrom").
				WithDetail("key", KeyLogFormat)
		}
		settings.LogFormat = format
	}

	indent := cfg.GetInt(KeyJSONIndent, settings.JSONIndent)
	if indent < 0 || indent > 8 {
		return settings, mdwerror.New("output indent must be between 0 and 8").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.SettingsFrom").
			WithDetail("key", KeyJSONIndent).
			WithDetail("value", indent)
	}
	settings.JSONIndent = indent

	return settings, nil
}

// NewLogger builds a logger writing to output with the configured level and format
func (s Settings) NewLogger(name string, output io.Writer) *mdwlog.Logger {
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: output,
		Name:   name,
	})
}
