// File: fmtx.go
// Title: Formatter Configuration and Output Sinks
// Description: Public entry points of the formatting package: the
//              Formatter type with its separator configuration and the
//              Sprintf, Snprintf, Bprintf and Vsprintfcb output paths.
// Version: v0.1.0
// Created: 2026-01-16
// Modified: 2026-01-16
//
// Change History:
// - 2026-01-16 v0.1.0: Initial implementation

package fmtx

// ChunkSize is the largest slice handed to a Vsprintfcb callback. The
// engine formats into an internal buffer of this size and flushes it
// whenever it fills, so output of any length streams through a fixed
// amount of memory.
const ChunkSize = 512

// CallbackFunc receives consecutive chunks of formatted output from
// Vsprintfcb. Each chunk is at most ChunkSize bytes and is reused
// between calls, so it must be copied if it is kept. Returning false
// stops formatting early.
type CallbackFunc func(chunk []byte) bool

// Separators holds the two locale-dependent characters of the
// formatter: Period separates the integer part from the fraction and
// Comma groups digits when the ' flag asks for it. Separators travel
// with a Formatter value instead of living in package-global state, so
// two goroutines can format for different locales at the same time.
type Separators struct {
	Period byte
	Comma  byte
}

// DefaultSeparators returns the period and comma of the C locale.
func DefaultSeparators() Separators {
	return Separators{Period: '.', Comma: ','}
}

// Formatter formats with a fixed separator configuration. The zero
// value formats with DefaultSeparators. A Formatter is immutable after
// construction and safe for concurrent use.
type Formatter struct {
	sep Separators
}

// New returns a Formatter using the given separators. A zero byte in
// either field falls back to the corresponding default.
func New(sep Separators) *Formatter {
	return &Formatter{sep: normalizeSeparators(sep)}
}

// Separators returns the configuration the Formatter formats with.
func (f *Formatter) Separators() Separators {
	return normalizeSeparators(f.sep)
}

func normalizeSeparators(sep Separators) Separators {
	if sep.Period == 0 {
		sep.Period = '.'
	}
	if sep.Comma == 0 {
		sep.Comma = ','
	}
	return sep
}

// Sprintf formats the arguments according to format and returns the
// result as a string.
func (f *Formatter) Sprintf(format string, args ...interface{}) string {
	var local [128]byte
	p := printer{sep: f.Separators(), out: local[:0], lim: -1}
	p.format(format, args)
	return string(p.out)
}

// Snprintf formats into dst and returns the length the complete output
// requires, which may exceed len(dst). When the output does not fit,
// dst receives its leading len(dst) bytes. A nil dst measures without
// writing. No terminator byte is appended.
func (f *Formatter) Snprintf(dst []byte, format string, args ...interface{}) int {
	p := printer{sep: f.Separators(), out: dst[0:0:len(dst)], lim: len(dst)}
	p.format(format, args)
	return p.total
}

// Bprintf appends the formatted output to dst and returns the extended
// slice, following the append convention of the standard library.
func (f *Formatter) Bprintf(dst []byte, format string, args ...interface{}) []byte {
	p := printer{sep: f.Separators(), out: dst, lim: -1}
	p.format(format, args)
	return p.out
}

// Vsprintfcb streams the formatted output through cb in chunks of at
// most ChunkSize bytes and returns the number of bytes delivered. A
// nil callback measures the output without producing it. When cb
// returns false, formatting stops and the count covers only what was
// delivered up to that point.
func (f *Formatter) Vsprintfcb(cb CallbackFunc, format string, args ...interface{}) int {
	if cb == nil {
		p := printer{sep: f.Separators(), lim: 0}
		p.format(format, args)
		return p.total
	}
	var chunk [ChunkSize]byte
	p := printer{sep: f.Separators(), out: chunk[:0], lim: -1, cb: cb}
	p.format(format, args)
	p.flush()
	return p.total
}

var defaultFormatter = New(DefaultSeparators())

// Sprintf formats with the default separators. See Formatter.Sprintf.
func Sprintf(format string, args ...interface{}) string {
	return defaultFormatter.Sprintf(format, args...)
}

// Snprintf formats with the default separators. See Formatter.Snprintf.
func Snprintf(dst []byte, format string, args ...interface{}) int {
	return defaultFormatter.Snprintf(dst, format, args...)
}

// Bprintf formats with the default separators. See Formatter.Bprintf.
func Bprintf(dst []byte, format string, args ...interface{}) []byte {
	return defaultFormatter.Bprintf(dst, format, args...)
}

// Vsprintfcb formats with the default separators. See
// Formatter.Vsprintfcb.
func Vsprintfcb(cb CallbackFunc, format string, args ...interface{}) int {
	return defaultFormatter.Vsprintfcb(cb, format, args...)
}

// printer carries the output state of one formatting call. out is the
// append target; lim caps how many bytes are kept there (-1 for
// unbounded) while total keeps counting, which is how Snprintf reports
// the required length past a full buffer. With cb set, out is the
// chunk buffer and flushes whenever it reaches ChunkSize.
type printer struct {
	sep   Separators
	out   []byte
	lim   int
	cb    CallbackFunc
	total int
	stop  bool
}

func (p *printer) flush() {
	if p.cb == nil || len(p.out) == 0 {
		return
	}
	if !p.cb(p.out) {
		p.stop = true
	}
	p.out = p.out[:0]
}

func (p *printer) writeByte(c byte) {
	if p.stop {
		return
	}
	if p.cb != nil {
		if len(p.out) == ChunkSize {
			p.flush()
			if p.stop {
				return
			}
		}
		p.out = append(p.out, c)
		p.total++
		return
	}
	p.total++
	if p.lim >= 0 && len(p.out) >= p.lim {
		return
	}
	p.out = append(p.out, c)
}

func (p *printer) write(b []byte) {
	if p.stop || len(b) == 0 {
		return
	}
	if p.cb == nil {
		p.total += len(b)
		if p.lim >= 0 {
			if room := p.lim - len(p.out); room < len(b) {
				if room > 0 {
					p.out = append(p.out, b[:room]...)
				}
				return
			}
		}
		p.out = append(p.out, b...)
		return
	}
	for len(b) > 0 {
		if len(p.out) == ChunkSize {
			p.flush()
			if p.stop {
				return
			}
		}
		n := ChunkSize - len(p.out)
		if n > len(b) {
			n = len(b)
		}
		p.out = append(p.out, b[:n]...)
		p.total += n
		b = b[n:]
	}
}

func (p *printer) writeString(s string) {
	if p.stop || len(s) == 0 {
		return
	}
	if p.cb == nil {
		p.total += len(s)
		if p.lim >= 0 {
			if room := p.lim - len(p.out); room < len(s) {
				if room > 0 {
					p.out = append(p.out, s[:room]...)
				}
				return
			}
		}
		p.out = append(p.out, s...)
		return
	}
	for len(s) > 0 {
		if len(p.out) == ChunkSize {
			p.flush()
			if p.stop {
				return
			}
		}
		n := ChunkSize - len(p.out)
		if n > len(s) {
			n = len(s)
		}
		p.out = append(p.out, s[:n]...)
		p.total += n
		s = s[n:]
	}
}

func (p *printer) pad(c byte, n int) {
	for ; n > 0 && !p.stop; n-- {
		p.writeByte(c)
	}
}
