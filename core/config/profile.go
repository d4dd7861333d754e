// File: profile.go
// Title: Typed Configuration Profiles
// Description: Decodes the [lexer] and [format] configuration tables
//              into the option types the lexer and formatter consume.
// Version: v0.1.0
// Created: 2026-01-20
// Modified: 2026-01-20
//
// Change History:
// - 2026-01-20 v0.1.0: Initial implementation

package config

import (
	grimmerror "github.com/msto63/grimm/core/error"
	"github.com/msto63/grimm/fmtx"
	"github.com/msto63/grimm/lexer"
)

// LexerProfile decodes the [lexer] table of cfg into lexer.Options.
// Absent keys keep the lexer defaults, so an empty configuration yields
// lexer.DefaultOptions(). Keys:
//
//	lexer.skip_whitespace     bool
//	lexer.skip_newlines       bool
//	lexer.skip_comments       bool
//	lexer.allow_dashes        bool
//	lexer.line_comment        string
//	lexer.block_comment_open  string
//	lexer.block_comment_close string
//
// Block comment delimiters must be configured as a pair; setting one
// without the other would silently mix a configured opener with the
// default closer.
func LexerProfile(cfg *Config) (lexer.Options, error) {
	if cfg == nil {
		return lexer.Options{}, grimmerror.New("nil configuration").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("config.LexerProfile")
	}

	opts := lexer.DefaultOptions()
	opts.SkipWhitespace = cfg.GetBool("lexer.skip_whitespace", opts.SkipWhitespace)
	opts.SkipNewlines = cfg.GetBool("lexer.skip_newlines", opts.SkipNewlines)
	opts.SkipComments = cfg.GetBool("lexer.skip_comments", opts.SkipComments)
	opts.AllowDashesInIdentifiers = cfg.GetBool("lexer.allow_dashes", opts.AllowDashesInIdentifiers)
	opts.LineComment = cfg.GetString("lexer.line_comment", opts.LineComment)

	hasOpen := cfg.Has("lexer.block_comment_open")
	hasClose := cfg.Has("lexer.block_comment_close")
	if hasOpen != hasClose {
		return lexer.Options{}, grimmerror.New("block comment delimiters must be configured together").
			WithCode(grimmerror.CodeInvalidConfig).
			WithOperation("config.LexerProfile").
			WithDetail("block_comment_open", cfg.GetString("lexer.block_comment_open")).
			WithDetail("block_comment_close", cfg.GetString("lexer.block_comment_close"))
	}
	opts.BlockCommentOpen = cfg.GetString("lexer.block_comment_open", opts.BlockCommentOpen)
	opts.BlockCommentClose = cfg.GetString("lexer.block_comment_close", opts.BlockCommentClose)

	return opts, nil
}

// FormatProfile decodes the [format] table of cfg into fmtx.Separators.
// Keys format.period and format.comma each hold a single ASCII
// character; absent or empty keys keep the defaults '.' and ','.
func FormatProfile(cfg *Config) (fmtx.Separators, error) {
	if cfg == nil {
		return fmtx.Separators{}, grimmerror.New("nil configuration").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("config.FormatProfile")
	}

	sep := fmtx.DefaultSeparators()

	period, err := separatorByte(cfg, "format.period")
	if err != nil {
		return fmtx.Separators{}, err
	}
	if period != 0 {
		sep.Period = period
	}

	comma, err := separatorByte(cfg, "format.comma")
	if err != nil {
		return fmtx.Separators{}, err
	}
	if comma != 0 {
		sep.Comma = comma
	}

	return sep, nil
}

// separatorByte reads a single-character separator value. It returns 0
// when the key is absent or empty.
func separatorByte(cfg *Config, key string) (byte, error) {
	value := cfg.GetString(key)
	if value == "" {
		return 0, nil
	}
	if len(value) != 1 || value[0] >= 0x80 {
		return 0, grimmerror.New("separator must be a single ASCII character").
			WithCode(grimmerror.CodeInvalidConfig).
			WithOperation("config.FormatProfile").
			WithDetail("key", key).
			WithDetail("value", value)
	}
	return value[0], nil
}
