// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements automatic configuration file discovery so the
//              command line tools find grimm.toml or grimm.yaml without
//              an explicit --config flag.
// Version: v0.1.0
// Created: 2026-01-20
// Modified: 2026-01-20
//
// Change History:
// - 2026-01-20 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	grimmerror "github.com/msto63/grimm/core/error"
)

// DiscoveryOptions defines options for automatic configuration file
// discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the default discovery options: a
// grimm.toml or grimm.yaml next to the working directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{".", "./config"},
		Filenames:  []string{"grimm"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		Required:   false,
	}
}

// Discover searches the configured paths for a configuration file and
// loads the first one found. When none exists and the options do not
// require one, an empty configuration is returned so callers can read
// defaults through it.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"grimm"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		return LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
	}

	if options.Required {
		candidates := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
		for _, path := range options.Paths {
			for _, filename := range options.Filenames {
				for _, ext := range options.Extensions {
					candidates = append(candidates, filepath.Join(path, filename+ext))
				}
			}
		}
		return nil, grimmerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
			WithCode(grimmerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", candidates)
	}

	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: options.EnvPrefix,
		watchers:  make([]ChangeHandler, 0),
	}, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				configPath := filepath.Join(path, filename+ext)
				if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
					return configPath, nil
				}
			}
		}
	}

	return "", grimmerror.New("configuration file not found").
		WithCode(grimmerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}
