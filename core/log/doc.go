// Package log provides structured logging for the grimm toolkit.
//
// Package: log
// Title: grimm Logging Framework
// Description: This package implements structured logging with levels,
//              contextual fields, multiple output formats, and operation
//              timing. It integrates with the grimm error system so that
//              structured errors are logged with their full context.
// Version: v0.1.0
// Created: 2026-01-13
// Modified: 2026-01-13
//
// Change History:
// - 2026-01-13 v0.1.0: Initial implementation with structured logging
//
// Features:
// - Six log levels from trace to fatal
// - JSON, text, and colored console output formats
// - Persistent contextual fields per logger
// - Severity-aware logging of grimm errors
// - Operation timers with checkpoints
// - Package-level default logger
//
// Usage:
//
//	import "github.com/msto63/grimm/core/log"
//
//	logger := log.New().
//		WithName("transcode").
//		WithLevel(log.LevelDebug)
//
//	logger.Info("converting file", log.Fields{
//		"source":   "input.txt",
//		"encoding": "utf-16le",
//	})
//
//	timer := logger.StartTimer("convert")
//	// ... do the work ...
//	timer.Stop()
//
// The core text processing packages (transcode, lexer, strbuf, fmtx) stay
// log-free; logging happens at the tool layer that drives them.
package log
