// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads TOML and YAML configuration with
//              environment overrides and typed profiles for the lexer
//              and formatter.
// Version: v0.1.0
// Created: 2026-01-20
// Modified: 2026-01-20
//
// Change History:
// - 2026-01-20 v0.1.0: Initial implementation

// Package config provides configuration management for the grimm toolkit.
//
// Package: config
// Title: TOML/YAML Configuration with Typed Profiles
// Description: This package loads configuration files in TOML or YAML
//              format, layers environment variable overrides on top,
//              and decodes the toolkit-specific tables into the option
//              types the lexer and formatter consume.
// Version: v0.1.0
// Created: 2026-01-20
// Modified: 2026-01-20
//
// Overview
//
// Configuration is read once into a nested map and accessed through
// dot-notation getters. The format is detected from the file extension,
// so grimm.toml and grimm.yaml behave identically as long as they
// describe the same values:
//
//	cfg, err := config.Load("grimm.toml")
//	if err != nil {
//	    return err
//	}
//	comment := cfg.GetString("lexer.line_comment", "//")
//
// Key capabilities include:
//   - TOML and YAML parsing with extension auto-detection
//   - Environment variable overrides (lexer.line_comment becomes
//     LEXER_LINE_COMMENT, or GRIMM_LEXER_LINE_COMMENT with a prefix)
//   - Defaults merging and runtime Set for tests
//   - Discovery of grimm.toml/grimm.yaml without an explicit path
//   - Polling-based file watching with change callbacks
//
// Typed Profiles
//
// On top of the generic getters, LexerProfile and FormatProfile decode
// the [lexer] and [format] tables into lexer.Options and
// fmtx.Separators. Absent keys keep the package defaults, so both
// profiles succeed on an empty configuration:
//
//	opts, err := config.LexerProfile(cfg)
//	if err != nil {
//	    return err
//	}
//	l := lexer.NewWithOptions(source, opts)
//
// Integer getters parse strings strictly: base prefixes, underscores,
// and surrounding whitespace make the value fall back to its default
// rather than being guessed at.
//
// Thread Safety
//
// A Config is safe for concurrent readers. File watching runs on a
// single background goroutine started by LoadWithOptions and stopped
// by StopWatching; change handlers run on their own goroutines and
// must synchronize anything they touch.
//
package config
