package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/grimm/core/config"
	grimmerror "github.com/msto63/grimm/core/error"
	grimmlog "github.com/msto63/grimm/core/log"
	"github.com/msto63/grimm/lexer"
	"github.com/msto63/grimm/strbuf"
)

var (
	patchSource        string
	patchTargetBegin   string
	patchTargetEnd     string
	patchSourceBegin   string
	patchSourceEnd     string
	patchOutput        string
	patchStripComments bool
	patchReplace       []string
)

var patchCmd = &cobra.Command{
	Use:   "patch [flags] TARGET",
	Short: "Splice a tagged section of one file into another",
	Long: `Splice a tagged section of one file into another and apply text
replacements, editing TARGET in place unless --output names a file.

With --source, the span of the source file from --source-begin through
--source-end (tags included, either may be omitted to anchor at the
file edge) replaces whatever currently sits between --target-begin and
--target-end in the target. The target tags stay in place, so the patch
can be reapplied as the source changes. --strip-comments removes
comments from the section before it is spliced, using the comment
delimiters from the [lexer] configuration section.

Each --replace OLD=NEW rewrites every occurrence of OLD after the
splice; the flag may repeat.`,
	Args: cobra.ExactArgs(1),
	RunE: runPatch,
}

func init() {
	rootCmd.AddCommand(patchCmd)
	patchCmd.Flags().StringVar(&patchSource, "source", "", "file providing the section to splice in")
	patchCmd.Flags().StringVar(&patchTargetBegin, "target-begin", "", "tag opening the section to replace in the target")
	patchCmd.Flags().StringVar(&patchTargetEnd, "target-end", "", "tag closing the section to replace in the target")
	patchCmd.Flags().StringVar(&patchSourceBegin, "source-begin", "", "tag opening the section in the source (default: start of file)")
	patchCmd.Flags().StringVar(&patchSourceEnd, "source-end", "", "tag closing the section in the source (default: end of file)")
	patchCmd.Flags().StringVarP(&patchOutput, "output", "o", "", "output file (default: rewrite TARGET)")
	patchCmd.Flags().BoolVar(&patchStripComments, "strip-comments", false, "remove comments from the source section")
	patchCmd.Flags().StringArrayVar(&patchReplace, "replace", nil, "rewrite OLD=NEW after splicing (repeatable)")
}

func runPatch(cmd *cobra.Command, args []string) error {
	if patchSource == "" && len(patchReplace) == 0 {
		return grimmerror.New("nothing to patch: need --source or --replace").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("grimm.patch")
	}
	if patchSource == "" && patchStripComments {
		return grimmerror.New("--strip-comments needs a --source section").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("grimm.patch")
	}
	if patchSource != "" && (patchTargetBegin == "" || patchTargetEnd == "") {
		return grimmerror.New("splicing needs --target-begin and --target-end").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("grimm.patch")
	}

	targetPath := args[0]
	raw, err := os.ReadFile(targetPath)
	if err != nil {
		return grimmerror.Wrap(err, "failed to read target file").
			WithCode(grimmerror.CodeNotFound).
			WithOperation("grimm.patch").
			WithDetail("file", targetPath)
	}
	text := string(raw)

	if patchSource != "" {
		srcRaw, err := os.ReadFile(patchSource)
		if err != nil {
			return grimmerror.Wrap(err, "failed to read source file").
				WithCode(grimmerror.CodeNotFound).
				WithOperation("grimm.patch").
				WithDetail("file", patchSource)
		}
		section, err := substrTagged(string(srcRaw), patchSourceBegin, patchSourceEnd)
		if err != nil {
			return err
		}
		if patchStripComments {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts, err := config.LexerProfile(cfg)
			if err != nil {
				return err
			}
			section, err = stripComments([]byte(section), opts)
			if err != nil {
				return err
			}
		}
		text, err = replaceRangeTagged(text, patchTargetBegin, patchTargetEnd, section)
		if err != nil {
			return err
		}
	}

	if len(patchReplace) > 0 {
		text, err = applyReplacements(text, patchReplace)
		if err != nil {
			return err
		}
	}

	out := patchOutput
	if out == "" {
		out = targetPath
	}
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return grimmerror.Wrap(err, "failed to write output file").
			WithCode(grimmerror.CodeInternal).
			WithOperation("grimm.patch").
			WithDetail("file", out)
	}

	grimmlog.Debug("patch complete",
		grimmlog.String("target", targetPath),
		grimmlog.String("output", out),
		grimmlog.Int("bytes", len(text)))
	return nil
}

// substrTagged returns the span of s running from the start of begTag
// through the end of endTag, both tags included. An empty begTag
// anchors the span at the start of s, an empty endTag runs it to the
// end. The end tag is searched for after the begin tag.
func substrTagged(s, begTag, endTag string) (string, error) {
	beg := 0
	if begTag != "" {
		i := strings.Index(s, begTag)
		if i < 0 {
			return "", errTagNotFound("begin", begTag)
		}
		beg = i
	}
	end := len(s)
	if endTag != "" {
		i := strings.Index(s[beg+len(begTag):], endTag)
		if i < 0 {
			return "", errTagNotFound("end", endTag)
		}
		end = beg + len(begTag) + i + len(endTag)
	}
	return s[beg:end], nil
}

// replaceRangeTagged replaces the text between the two target tags with
// section, keeping the tags themselves in place and putting the section
// on its own lines. Both tags must be present in the target.
func replaceRangeTagged(target, begTag, endTag, section string) (string, error) {
	if begTag == "" || endTag == "" {
		return "", grimmerror.New("target tags must be non-empty").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("grimm.patch")
	}
	i := strings.Index(target, begTag)
	if i < 0 {
		return "", errTagNotFound("begin", begTag)
	}
	beg := i + len(begTag)
	j := strings.Index(target[beg:], endTag)
	if j < 0 {
		return "", errTagNotFound("end", endTag)
	}
	end := beg + j

	s := strbuf.New(target)
	s.Replace(beg, end-beg, "\n"+section+"\n")
	return s.String(), s.Result()
}

// stripComments re-scans the section and concatenates every token the
// scanner produces except comments. Tokens tile their input, so the
// output is the section text with the comment spans cut out; a line
// comment keeps its terminating newline because that newline is its
// own token.
func stripComments(section []byte, opts lexer.Options) (string, error) {
	opts.SkipComments = true
	opts.SkipWhitespace = false
	opts.SkipNewlines = false

	l := lexer.NewWithOptions(section, opts)
	out := strbuf.NewCap(len(section))
	for {
		if err := l.Next(); err != nil {
			if grimmerror.HasCode(err, grimmerror.CodeEndOfInput) {
				break
			}
			return "", err
		}
		out.CatBytes(l.Text())
	}
	return out.String(), out.Result()
}

func applyReplacements(text string, pairs []string) (string, error) {
	s := strbuf.New(text)
	for _, pair := range pairs {
		old, replacement, ok := strings.Cut(pair, "=")
		if !ok || old == "" {
			return "", grimmerror.New("replacement must have the form OLD=NEW").
				WithCode(grimmerror.CodeInvalidArgument).
				WithOperation("grimm.patch").
				WithDetail("pair", pair)
		}
		s.ReplaceAll(old, replacement)
	}
	return s.String(), s.Result()
}

func errTagNotFound(role, tag string) error {
	return grimmerror.New("tag not found").
		WithCode(grimmerror.CodeNotFound).
		WithOperation("grimm.patch").
		WithDetail("role", role).
		WithDetail("tag", tag)
}
