// File: profile_test.go
// Title: Typed Profile Tests
// Description: Tests decoding of the [lexer] and [format] tables into
//              lexer.Options and fmtx.Separators, including the
//              TOML/YAML equivalence of the resulting profiles.
// Version: v0.1.0
// Created: 2026-01-20
// Modified: 2026-01-20
//
// Change History:
// - 2026-01-20 v0.1.0: Initial test implementation

package config

import (
	"testing"

	grimmerror "github.com/msto63/grimm/core/error"
	"github.com/msto63/grimm/fmtx"
	"github.com/msto63/grimm/lexer"
)

func TestLexerProfileDefaults(t *testing.T) {
	cfg, err := LoadFromString("", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() returned error: %v", err)
	}

	opts, err := LexerProfile(cfg)
	if err != nil {
		t.Fatalf("LexerProfile() returned error: %v", err)
	}
	if opts != lexer.DefaultOptions() {
		t.Errorf("empty config profile = %+v, want defaults %+v", opts, lexer.DefaultOptions())
	}
}

func TestLexerProfileTOMLAndYAMLAgree(t *testing.T) {
	tomlCfg, err := LoadFromString(`
[lexer]
skip_whitespace = true
skip_newlines = true
skip_comments = false
allow_dashes = true
line_comment = "#"
block_comment_open = "(*"
block_comment_close = "*)"
`, FormatTOML)
	if err != nil {
		t.Fatalf("TOML LoadFromString() returned error: %v", err)
	}

	yamlCfg, err := LoadFromString(`
lexer:
  skip_whitespace: true
  skip_newlines: true
  skip_comments: false
  allow_dashes: true
  line_comment: "#"
  block_comment_open: "(*"
  block_comment_close: "*)"
`, FormatYAML)
	if err != nil {
		t.Fatalf("YAML LoadFromString() returned error: %v", err)
	}

	tomlOpts, err := LexerProfile(tomlCfg)
	if err != nil {
		t.Fatalf("LexerProfile(toml) returned error: %v", err)
	}
	yamlOpts, err := LexerProfile(yamlCfg)
	if err != nil {
		t.Fatalf("LexerProfile(yaml) returned error: %v", err)
	}

	if tomlOpts != yamlOpts {
		t.Errorf("profiles disagree: toml %+v, yaml %+v", tomlOpts, yamlOpts)
	}

	want := lexer.Options{
		SkipWhitespace:           true,
		SkipNewlines:             true,
		SkipComments:             false,
		AllowDashesInIdentifiers: true,
		LineComment:              "#",
		BlockCommentOpen:         "(*",
		BlockCommentClose:        "*)",
	}
	if tomlOpts != want {
		t.Errorf("profile = %+v, want %+v", tomlOpts, want)
	}
}

func TestLexerProfileDelimiterPair(t *testing.T) {
	cfg, err := LoadFromString(`
[lexer]
block_comment_open = "(*"
`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() returned error: %v", err)
	}

	if _, err := LexerProfile(cfg); !grimmerror.HasCode(err, grimmerror.CodeInvalidConfig) {
		t.Errorf("half-configured pair error = %v, want CodeInvalidConfig", err)
	}
}

func TestLexerProfileNilConfig(t *testing.T) {
	if _, err := LexerProfile(nil); !grimmerror.HasCode(err, grimmerror.CodeInvalidArgument) {
		t.Errorf("LexerProfile(nil) error = %v, want CodeInvalidArgument", err)
	}
	if _, err := FormatProfile(nil); !grimmerror.HasCode(err, grimmerror.CodeInvalidArgument) {
		t.Errorf("FormatProfile(nil) error = %v, want CodeInvalidArgument", err)
	}
}

func TestFormatProfile(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadFromString("", FormatTOML)
		if err != nil {
			t.Fatalf("LoadFromString() returned error: %v", err)
		}
		sep, err := FormatProfile(cfg)
		if err != nil {
			t.Fatalf("FormatProfile() returned error: %v", err)
		}
		if sep != fmtx.DefaultSeparators() {
			t.Errorf("empty config separators = %+v, want defaults", sep)
		}
	})

	t.Run("swapped separators", func(t *testing.T) {
		cfg, err := LoadFromString(`
[format]
period = ","
comma = "."
`, FormatTOML)
		if err != nil {
			t.Fatalf("LoadFromString() returned error: %v", err)
		}
		sep, err := FormatProfile(cfg)
		if err != nil {
			t.Fatalf("FormatProfile() returned error: %v", err)
		}
		if sep.Period != ',' || sep.Comma != '.' {
			t.Errorf("separators = %+v, want Period ',' Comma '.'", sep)
		}

		// The profile drives the formatter directly.
		f := fmtx.New(sep)
		if got := f.Sprintf("%'d", 1000000); got != "1.000.000" {
			t.Errorf("grouped output = %q, want %q", got, "1.000.000")
		}
	})

	t.Run("multi-character separator", func(t *testing.T) {
		cfg, err := LoadFromString(`
[format]
period = "::"
`, FormatTOML)
		if err != nil {
			t.Fatalf("LoadFromString() returned error: %v", err)
		}
		if _, err := FormatProfile(cfg); !grimmerror.HasCode(err, grimmerror.CodeInvalidConfig) {
			t.Errorf("multi-character separator error = %v, want CodeInvalidConfig", err)
		}
	})

	t.Run("non-ASCII separator", func(t *testing.T) {
		cfg, err := LoadFromString("format:\n  comma: \"·\"\n", FormatYAML)
		if err != nil {
			t.Fatalf("LoadFromString() returned error: %v", err)
		}
		if _, err := FormatProfile(cfg); !grimmerror.HasCode(err, grimmerror.CodeInvalidConfig) {
			t.Errorf("non-ASCII separator error = %v, want CodeInvalidConfig", err)
		}
	})
}
