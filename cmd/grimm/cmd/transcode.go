package cmd

import (
	"encoding/binary"
	"os"

	"github.com/spf13/cobra"

	grimmerror "github.com/msto63/grimm/core/error"
	grimmlog "github.com/msto63/grimm/core/log"
	"github.com/msto63/grimm/transcode"
	"github.com/msto63/grimm/utils/asciix"
)

var (
	transcodeFrom      string
	transcodeTo        string
	transcodeOutput    string
	transcodeForbidBOM bool
	transcodeStrict    bool
)

var transcodeCmd = &cobra.Command{
	Use:   "transcode [flags] FILE",
	Short: "Convert a file between Unicode encodings",
	Long: `Convert a file between Unicode encodings.

The conversion runs as a measure/materialize pair: the destination is
sized exactly before a single conversion pass fills it. Malformed input
is substituted with U+FFFD unless --strict is given.

Supported conversions:
  utf8    -> utf16le, utf16be, utf32le, utf32be
  utf16le -> utf8, utf32le
  utf16be -> utf8, utf32be
  utf16   -> utf8 (byte order taken from the leading BOM)
  utf32le -> utf8, utf16le
  utf32be -> utf8, utf16be
  utf32   -> utf8 (byte order taken from the leading BOM)`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscode,
}

func init() {
	rootCmd.AddCommand(transcodeCmd)
	transcodeCmd.Flags().StringVar(&transcodeFrom, "from", "utf8", "source encoding")
	transcodeCmd.Flags().StringVar(&transcodeTo, "to", "utf16le", "destination encoding")
	transcodeCmd.Flags().StringVarP(&transcodeOutput, "output", "o", "", "output file (default: stdout)")
	transcodeCmd.Flags().BoolVar(&transcodeForbidBOM, "forbid-bom", false, "reject input that starts with a byte order mark")
	transcodeCmd.Flags().BoolVar(&transcodeStrict, "strict", false, "fail on malformed input instead of substituting U+FFFD")
}

func runTranscode(cmd *cobra.Command, args []string) error {
	from, err := parseEncoding(transcodeFrom)
	if err != nil {
		return err
	}
	to, err := parseEncoding(transcodeTo)
	if err != nil {
		return err
	}
	if to == encUTF16BOM || to == encUTF32BOM {
		return grimmerror.New("destination encoding needs an explicit byte order").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("grimm.transcode").
			WithDetail("to", transcodeTo)
	}
	if from == to {
		return grimmerror.New("source and destination encodings are identical").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("grimm.transcode").
			WithDetail("encoding", transcodeFrom)
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return grimmerror.Wrap(err, "failed to read input file").
			WithCode(grimmerror.CodeNotFound).
			WithOperation("grimm.transcode").
			WithDetail("file", args[0])
	}

	var flags transcode.Flags
	if transcodeForbidBOM {
		flags |= transcode.ForbidBOM
	}
	if transcodeStrict {
		flags |= transcode.ErrorOnInvalidCodePoint
	}

	timer := grimmlog.GetDefault().StartTimer("transcode").
		WithField("from", from.String()).
		WithField("to", to.String())
	out, consumed, written, err := convert(src, from, to, flags)
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.WithField("consumedUnits", consumed)
	timer.WithField("writtenUnits", written)
	timer.Stop()

	if transcodeOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(transcodeOutput, out, 0644)
}

// encoding names a wire encoding the transcode command accepts. The BOM
// variants leave the byte order to a leading byte order mark and are
// valid for input only.
type encoding int

const (
	encUTF8 encoding = iota
	encUTF16LE
	encUTF16BE
	encUTF16BOM
	encUTF32LE
	encUTF32BE
	encUTF32BOM
)

func (e encoding) String() string {
	switch e {
	case encUTF8:
		return "utf8"
	case encUTF16LE:
		return "utf16le"
	case encUTF16BE:
		return "utf16be"
	case encUTF16BOM:
		return "utf16"
	case encUTF32LE:
		return "utf32le"
	case encUTF32BE:
		return "utf32be"
	case encUTF32BOM:
		return "utf32"
	default:
		return "unknown"
	}
}

func parseEncoding(name string) (encoding, error) {
	switch asciix.ToLower(name) {
	case "utf8", "utf-8":
		return encUTF8, nil
	case "utf16le", "utf-16le":
		return encUTF16LE, nil
	case "utf16be", "utf-16be":
		return encUTF16BE, nil
	case "utf16", "utf-16":
		return encUTF16BOM, nil
	case "utf32le", "utf-32le":
		return encUTF32LE, nil
	case "utf32be", "utf-32be":
		return encUTF32BE, nil
	case "utf32", "utf-32":
		return encUTF32BOM, nil
	}
	return 0, grimmerror.New("unknown encoding").
		WithCode(grimmerror.CodeInvalidArgument).
		WithOperation("grimm.transcode").
		WithDetail("encoding", name)
}

// convert converts src between the two encodings, returning the output
// bytes along with the consumed and written unit counts.
func convert(src []byte, from, to encoding, flags transcode.Flags) ([]byte, int, int, error) {
	switch from {
	case encUTF8:
		return convertFromUTF8(src, to, flags)
	case encUTF16LE, encUTF16BE, encUTF16BOM:
		units, err := bytesToUnits16(src)
		if err != nil {
			return nil, 0, 0, err
		}
		return convertFromUTF16(units, from, to, flags)
	case encUTF32LE, encUTF32BE, encUTF32BOM:
		units, err := bytesToUnits32(src)
		if err != nil {
			return nil, 0, 0, err
		}
		return convertFromUTF32(units, from, to, flags)
	}
	return nil, 0, 0, errUnsupportedConversion(from, to)
}

func convertFromUTF8(src []byte, to encoding, flags transcode.Flags) ([]byte, int, int, error) {
	switch to {
	case encUTF16LE, encUTF16BE:
		n, _, err := transcode.UTF8ToUTF16Len(src, flags)
		if err != nil {
			return nil, 0, 0, err
		}
		dst := make([]uint16, n)
		var written, consumed int
		if to == encUTF16LE {
			written, consumed, err = transcode.UTF8ToUTF16LE(dst, src, flags)
		} else {
			written, consumed, err = transcode.UTF8ToUTF16BE(dst, src, flags)
		}
		return units16ToBytes(dst[:written]), consumed, written, err

	case encUTF32LE, encUTF32BE:
		n, _, err := transcode.UTF8ToUTF32Len(src, flags)
		if err != nil {
			return nil, 0, 0, err
		}
		dst := make([]uint32, n)
		var written, consumed int
		if to == encUTF32LE {
			written, consumed, err = transcode.UTF8ToUTF32LE(dst, src, flags)
		} else {
			written, consumed, err = transcode.UTF8ToUTF32BE(dst, src, flags)
		}
		return units32ToBytes(dst[:written]), consumed, written, err
	}
	return nil, 0, 0, errUnsupportedConversion(encUTF8, to)
}

func convertFromUTF16(units []uint16, from, to encoding, flags transcode.Flags) ([]byte, int, int, error) {
	switch {
	case to == encUTF8:
		var n int
		var err error
		switch from {
		case encUTF16LE:
			n, _, err = transcode.UTF16LEToUTF8Len(units, flags)
		case encUTF16BE:
			n, _, err = transcode.UTF16BEToUTF8Len(units, flags)
		default:
			n, _, err = transcode.UTF16ToUTF8Len(units, flags)
		}
		if err != nil {
			return nil, 0, 0, err
		}
		dst := make([]byte, n)
		var written, consumed int
		switch from {
		case encUTF16LE:
			written, consumed, err = transcode.UTF16LEToUTF8(dst, units, flags)
		case encUTF16BE:
			written, consumed, err = transcode.UTF16BEToUTF8(dst, units, flags)
		default:
			written, consumed, err = transcode.UTF16ToUTF8(dst, units, flags)
		}
		return dst[:written], consumed, written, err

	case from == encUTF16LE && to == encUTF32LE:
		n, _, err := transcode.UTF16LEToUTF32Len(units, flags)
		if err != nil {
			return nil, 0, 0, err
		}
		dst := make([]uint32, n)
		written, consumed, err := transcode.UTF16LEToUTF32LE(dst, units, flags)
		return units32ToBytes(dst[:written]), consumed, written, err

	case from == encUTF16BE && to == encUTF32BE:
		n, _, err := transcode.UTF16BEToUTF32Len(units, flags)
		if err != nil {
			return nil, 0, 0, err
		}
		dst := make([]uint32, n)
		written, consumed, err := transcode.UTF16BEToUTF32BE(dst, units, flags)
		return units32ToBytes(dst[:written]), consumed, written, err
	}
	return nil, 0, 0, errUnsupportedConversion(from, to)
}

func convertFromUTF32(units []uint32, from, to encoding, flags transcode.Flags) ([]byte, int, int, error) {
	switch {
	case to == encUTF8:
		var n int
		var err error
		switch from {
		case encUTF32LE:
			n, _, err = transcode.UTF32LEToUTF8Len(units, flags)
		case encUTF32BE:
			n, _, err = transcode.UTF32BEToUTF8Len(units, flags)
		default:
			n, _, err = transcode.UTF32ToUTF8Len(units, flags)
		}
		if err != nil {
			return nil, 0, 0, err
		}
		dst := make([]byte, n)
		var written, consumed int
		switch from {
		case encUTF32LE:
			written, consumed, err = transcode.UTF32LEToUTF8(dst, units, flags)
		case encUTF32BE:
			written, consumed, err = transcode.UTF32BEToUTF8(dst, units, flags)
		default:
			written, consumed, err = transcode.UTF32ToUTF8(dst, units, flags)
		}
		return dst[:written], consumed, written, err

	case from == encUTF32LE && to == encUTF16LE:
		n, _, err := transcode.UTF32LEToUTF16Len(units, flags)
		if err != nil {
			return nil, 0, 0, err
		}
		dst := make([]uint16, n)
		written, consumed, err := transcode.UTF32LEToUTF16LE(dst, units, flags)
		return units16ToBytes(dst[:written]), consumed, written, err

	case from == encUTF32BE && to == encUTF16BE:
		n, _, err := transcode.UTF32BEToUTF16Len(units, flags)
		if err != nil {
			return nil, 0, 0, err
		}
		dst := make([]uint16, n)
		written, consumed, err := transcode.UTF32BEToUTF16BE(dst, units, flags)
		return units16ToBytes(dst[:written]), consumed, written, err
	}
	return nil, 0, 0, errUnsupportedConversion(from, to)
}

func errUnsupportedConversion(from, to encoding) error {
	return grimmerror.New("unsupported conversion").
		WithCode(grimmerror.CodeInvalidArgument).
		WithOperation("grimm.transcode").
		WithDetail("from", from.String()).
		WithDetail("to", to.String())
}

// bytesToUnits16 reinterprets raw file bytes as 16-bit code units in
// memory order, the way the conversion functions expect them.
func bytesToUnits16(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, grimmerror.New("input size is not a whole number of 16-bit units").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("grimm.transcode").
			WithDetail("size", len(b))
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.NativeEndian.Uint16(b[2*i:])
	}
	return units, nil
}

func bytesToUnits32(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, grimmerror.New("input size is not a whole number of 32-bit units").
			WithCode(grimmerror.CodeInvalidArgument).
			WithOperation("grimm.transcode").
			WithDetail("size", len(b))
	}
	units := make([]uint32, len(b)/4)
	for i := range units {
		units[i] = binary.NativeEndian.Uint32(b[4*i:])
	}
	return units, nil
}

func units16ToBytes(units []uint16) []byte {
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.NativeEndian.PutUint16(b[2*i:], u)
	}
	return b
}

func units32ToBytes(units []uint32) []byte {
	b := make([]byte, 4*len(units))
	for i, u := range units {
		binary.NativeEndian.PutUint32(b[4*i:], u)
	}
	return b
}
