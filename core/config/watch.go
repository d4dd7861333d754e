// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements polling-based monitoring of configuration
//              files so long-running commands pick up edits without a
//              restart.
// Version: v0.1.0
// Created: 2026-01-20
// Modified: 2026-01-20
//
// Change History:
// - 2026-01-20 v0.1.0: Initial implementation of file watching

package config

import (
	"os"
	"time"

	grimmerror "github.com/msto63/grimm/core/error"
	grimmlog "github.com/msto63/grimm/core/log"
)

// watchInterval is the polling period for file modification checks
const watchInterval = 1 * time.Second

// startWatching monitors the configuration file for changes until
// StopWatching is called.
func (c *Config) startWatching() {
	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !c.IsWatching() {
			break
		}

		fileInfo, err := os.Stat(c.filePath)
		if err != nil {
			// File may be mid-rename during an editor save.
			continue
		}

		c.mu.RLock()
		lastModified := c.lastModified
		c.mu.RUnlock()

		if fileInfo.ModTime().After(lastModified) {
			if err := c.reload(); err != nil {
				grimmlog.Warn("configuration reload failed",
					grimmlog.String("path", c.filePath),
					grimmlog.Err(err))
				continue
			}
			grimmlog.Info("configuration reloaded",
				grimmlog.String("path", c.filePath))
		}
	}
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return grimmerror.Wrap(err, "failed to read config file during reload").
			WithCode(grimmerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return grimmerror.Wrap(err, "failed to parse config file during reload").
			WithCode(grimmerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	c.mu.Lock()
	oldConfig := &Config{
		data:   deepCopyMap(c.data),
		format: c.format,
	}

	c.data = newData
	if fileInfo, err := os.Stat(c.filePath); err == nil {
		c.lastModified = fileInfo.ModTime()
	}

	// Copy the handler list so callbacks run without the lock held.
	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)

	newConfig := &Config{
		data:   deepCopyMap(c.data),
		format: c.format,
	}
	c.mu.Unlock()

	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = false
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
