package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/grimm/core/config"
	grimmerror "github.com/msto63/grimm/core/error"
	grimmlog "github.com/msto63/grimm/core/log"
	"github.com/msto63/grimm/lexer"
)

var tokensTransform bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] FILE",
	Short: "Scan a file and list its tokens",
	Long: `Scan a file and list its tokens, one per line with the line
number, the classification and the raw text.

The scanner profile comes from the [lexer] section of the configuration
file: comment delimiters, dash handling in identifiers and which
categories to skip. Without a configuration every token is listed,
whitespace and newlines included.

With --transform each token prints its logical value instead of the raw
text: strings lose their quotes and collapse their escapes, comments
lose their delimiters. A malformed literal is listed as an error token
and stops the scan.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensTransform, "transform", false, "print logical token values instead of raw text")
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := config.LexerProfile(cfg)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return grimmerror.Wrap(err, "failed to read input file").
			WithCode(grimmerror.CodeNotFound).
			WithOperation("grimm.tokens").
			WithDetail("file", args[0])
	}

	l := lexer.NewWithOptions(src, opts)
	w := bufio.NewWriter(os.Stdout)

	count := 0
	for {
		err := l.Next()
		if err != nil {
			if grimmerror.HasCode(err, grimmerror.CodeEndOfInput) {
				break
			}
			// Show the offending span before failing.
			printToken(w, l)
			w.Flush()
			return err
		}
		count++
		printToken(w, l)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	grimmlog.Debug("scan complete",
		grimmlog.String("file", args[0]),
		grimmlog.Int("tokens", count))
	return nil
}

func printToken(w *bufio.Writer, l *lexer.Lexer) {
	text := l.Text()
	if tokensTransform {
		if value, err := l.Transform(); err == nil {
			text = []byte(value.String())
		}
	}
	fmt.Fprintf(w, "%4d  %-13s  %q\n", l.Line(), l.Token(), text)
}
