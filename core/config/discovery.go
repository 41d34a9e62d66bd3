// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Locates a settings file across a list of directories,
//              base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-14 v0.2.0: Reduced to file lookup, loading moved to callers

package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/utilkit/core/error"
)

// DiscoveryOptions defines where to look for a configuration file
type DiscoveryOptions struct {
	Paths      []string // Directories to search
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions tried in order
}

// DefaultDiscoveryOptions returns the lookup used by the utilkit CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if home, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(home, "utilkit"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"utilkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// FindConfigFile returns the first existing regular file matching the options.
// Missing files yield an error with CodeNotFound.
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(dir, name+ext)
				if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
					return candidate, nil
				}
			}
		}
	}

	return "", mdwerror.New("no configuration file found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("paths", strings.Join(options.Paths, ",")).
		WithDetail("filenames", strings.Join(options.Filenames, ","))
}
