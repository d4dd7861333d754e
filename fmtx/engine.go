// File: engine.go
// Title: Directive Parsing and Field Layout
// Description: The formatting loop: literal copying, parsing of flags,
//              width, precision and length modifiers, dispatch to the
//              per-conversion builders and the shared field layout that
//              assembles padding, sign, digits and suffixes.
// Version: v0.1.0
// Created: 2026-01-16
// Modified: 2026-01-16
//
// Change History:
// - 2026-01-16 v0.1.0: Initial implementation

package fmtx

import (
	"github.com/msto63/grimm/transcode"
)

const (
	flagLeftJust uint32 = 1 << iota
	flagPlus
	flagSpace
	flagAlt
	flagZero
	flagComma
	flagMetric
	flagMetric1024
	flagJEDEC
	flagNoSpace
	flagNegative
)

// numSize is the scratch buffer for one conversion body. Bodies that
// would not fit fall back to streamed padding or a heap-grown slice
// instead of truncating.
const numSize = 512

const (
	argMissing = "MISSING"
	argBadType = "BADTYPE"
)

// piece describes one laid-out conversion before padding: the sign and
// radix prefix in lead, the digit or text body, the exponent or metric
// suffix in tail, and tz trailing zeros that are cheaper to stream than
// to buffer. csPos and csGroup carry the digit grouping state of the
// body so that zero padding continues the grouping seamlessly.
type piece struct {
	fl      uint32
	fw, pr  int
	lead    []byte
	tail    []byte
	body    []byte
	str     string
	isStr   bool
	tz      int
	csPos   int
	csGroup int
}

func (p *printer) format(format string, args []interface{}) {
	argi := 0
	i := 0
	for i < len(format) && !p.stop {
		start := i
		for i < len(format) && format[i] != '%' {
			i++
		}
		if i > start {
			p.writeString(format[start:i])
		}
		if i >= len(format) {
			break
		}
		i++

		var fl uint32
	flags:
		for i < len(format) {
			switch format[i] {
			case '-':
				fl |= flagLeftJust
				i++
			case '+':
				fl |= flagPlus
				i++
			case ' ':
				fl |= flagSpace
				i++
			case '#':
				fl |= flagAlt
				i++
			case '\'':
				fl |= flagComma
				i++
			case '_':
				fl |= flagNoSpace
				i++
			case '$':
				switch {
				case fl&flagMetric == 0:
					fl |= flagMetric
				case fl&flagMetric1024 == 0:
					fl |= flagMetric1024
				default:
					fl |= flagJEDEC
				}
				i++
			case '0':
				fl |= flagZero
				i++
				break flags
			default:
				break flags
			}
		}

		fw := 0
		if i < len(format) && format[i] == '*' {
			i++
			if a, ok := takeArg(args, &argi); ok {
				if w, okw := intArg(a); okw {
					fw = w
					if fw < 0 {
						fl |= flagLeftJust
						fw = -fw
					}
				}
			}
		} else {
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				fw = fw*10 + int(format[i]-'0')
				i++
			}
		}

		pr := -1
		if i < len(format) && format[i] == '.' {
			i++
			if i < len(format) && format[i] == '*' {
				i++
				if a, ok := takeArg(args, &argi); ok {
					// a negative precision argument counts as omitted
					if v, okv := intArg(a); okv && v >= 0 {
						pr = v
					}
				}
			} else {
				pr = 0
				for i < len(format) && format[i] >= '0' && format[i] <= '9' {
					pr = pr*10 + int(format[i]-'0')
					i++
				}
			}
		}

		// Length modifiers are accepted for printf source fidelity;
		// the Go type of the argument decides the integer width.
		if i < len(format) {
			switch format[i] {
			case 'h':
				i++
				if i < len(format) && format[i] == 'h' {
					i++
				}
			case 'l':
				i++
				if i < len(format) && format[i] == 'l' {
					i++
				}
			case 'j', 'z', 't':
				i++
			case 'I':
				if i+2 < len(format) &&
					((format[i+1] == '6' && format[i+2] == '4') ||
						(format[i+1] == '3' && format[i+2] == '2')) {
					i += 3
				} else {
					i++
				}
			}
		}
		if i >= len(format) {
			break
		}
		conv := format[i]
		i++
		p.directive(conv, fl, fw, pr, args, &argi)
	}
}

func (p *printer) directive(conv byte, fl uint32, fw, pr int, args []interface{}, argi *int) {
	var num [numSize]byte
	var leadBuf, tailBuf [8]byte
	pc := piece{fl: fl, fw: fw, pr: pr, lead: leadBuf[:0], tail: tailBuf[:0]}

	switch conv {
	case 's':
		a, ok := takeArg(args, argi)
		if !ok {
			p.badArg(conv, argMissing)
			return
		}
		s, b, oks := stringArg(a)
		if !oks {
			p.badArg(conv, argBadType)
			return
		}
		if b != nil {
			if pc.pr >= 0 && len(b) > pc.pr {
				b = b[:pc.pr]
			}
			pc.body = b
		} else {
			if pc.pr >= 0 && len(s) > pc.pr {
				s = s[:pc.pr]
			}
			pc.str = s
			pc.isStr = true
		}
		pc.pr = 0

	case 'c':
		a, ok := takeArg(args, argi)
		if !ok {
			p.badArg(conv, argMissing)
			return
		}
		u, okc := bitsArg(a)
		if !okc {
			p.badArg(conv, argBadType)
			return
		}
		cp := uint32(transcode.ReplacementCodePoint)
		if u <= transcode.MaxCodePoint {
			cp = uint32(u)
		}
		n := transcode.EncodeUTF8CodePoint(num[:4], cp)
		if n == 0 {
			n = transcode.EncodeUTF8CodePoint(num[:4], transcode.ReplacementCodePoint)
		}
		pc.body = num[:n]
		pc.pr = 0

	case 'n':
		a, ok := takeArg(args, argi)
		if !ok {
			p.badArg(conv, argMissing)
			return
		}
		d, okn := a.(*int)
		if !okn {
			p.badArg(conv, argBadType)
			return
		}
		*d = p.total
		return

	case 'd', 'i', 'u':
		a, ok := takeArg(args, argi)
		if !ok {
			p.badArg(conv, argMissing)
			return
		}
		var u uint64
		if conv == 'u' {
			var oku bool
			u, oku = bitsArg(a)
			if !oku {
				p.badArg(conv, argBadType)
				return
			}
		} else {
			mag, neg, oki := integerArg(a)
			if !oki {
				p.badArg(conv, argBadType)
				return
			}
			u = mag
			if neg {
				pc.fl |= flagNegative
			}
		}
		if pc.fl&flagMetric != 0 {
			if u < 1024 {
				pc.pr = 0
			} else if pc.pr == -1 {
				pc.pr = 1
			}
			p.formatFloat(&pc, num[:], 'f', float64(u))
		} else {
			p.formatDecimal(&pc, num[:], u)
		}

	case 'x', 'X', 'o', 'b', 'B':
		a, ok := takeArg(args, argi)
		if !ok {
			p.badArg(conv, argMissing)
			return
		}
		u, oku := bitsArg(a)
		if !oku {
			p.badArg(conv, argBadType)
			return
		}
		p.formatRadix(&pc, num[:], conv, u)

	case 'p':
		a, ok := takeArg(args, argi)
		if !ok {
			p.badArg(conv, argMissing)
			return
		}
		u, okp := pointerArg(a)
		if !okp {
			p.badArg(conv, argBadType)
			return
		}
		pc.pr = pointerHexDigits
		pc.fl &^= flagZero
		p.formatRadix(&pc, num[:], 'x', u)

	case 'f', 'e', 'E', 'g', 'G':
		a, ok := takeArg(args, argi)
		if !ok {
			p.badArg(conv, argMissing)
			return
		}
		fv, okf := floatArg(a)
		if !okf {
			p.badArg(conv, argBadType)
			return
		}
		p.formatFloat(&pc, num[:], conv, fv)

	case 'a', 'A':
		a, ok := takeArg(args, argi)
		if !ok {
			p.badArg(conv, argMissing)
			return
		}
		fv, okf := floatArg(a)
		if !okf {
			p.badArg(conv, argBadType)
			return
		}
		p.formatHexFloat(&pc, num[:], conv, fv)

	default:
		// Unknown conversions echo the character itself; flags and
		// width are discarded and no argument is consumed. This also
		// covers %%.
		num[0] = conv
		pc = piece{body: num[:1]}
	}

	p.emit(&pc)
}

// badArg reports a missing or mistyped argument inline, in the manner
// of the standard library's %! markers.
func (p *printer) badArg(conv byte, reason string) {
	p.writeString("%!")
	p.writeByte(conv)
	p.writeByte('(')
	p.writeString(reason)
	p.writeByte(')')
}

// emit assembles one field: right-justification spaces, the lead,
// leading zeros that continue the body's digit grouping, the body,
// streamed trailing zeros, the tail and finally left-justification
// spaces. Leading zeros absorb the field width unless the field is
// left-justified; a right-justified space pad suppresses grouping in
// the pad itself.
func (p *printer) emit(pc *piece) {
	l := len(pc.body)
	if pc.isStr {
		l = len(pc.str)
	}
	fl, fw, pr := pc.fl, pc.fw, pc.pr
	if pr < l {
		pr = l
	}
	n := pr + len(pc.lead) + len(pc.tail) + pc.tz
	if fw < n {
		fw = n
	}
	fw -= n
	pr -= l

	if fl&flagLeftJust == 0 {
		if fl&flagZero != 0 {
			if fw > pr {
				pr = fw
			}
			fw = 0
		} else {
			fl &^= flagComma
		}
	}

	if fl&flagLeftJust == 0 {
		p.pad(' ', fw)
		fw = 0
	}
	p.write(pc.lead)
	if pr > 0 {
		grouped := fl&flagComma != 0 && pc.csGroup > 0
		cs, group := 0, pc.csGroup
		if grouped {
			cs = group - (pr+pc.csPos)%(group+1)
		}
		for ; pr > 0; pr-- {
			if grouped && cs == group {
				cs = 0
				p.writeByte(p.sep.Comma)
			} else {
				cs++
				p.writeByte('0')
			}
		}
	}
	if pc.isStr {
		p.writeString(pc.str)
	} else {
		p.write(pc.body)
	}
	p.pad('0', pc.tz)
	p.write(pc.tail)
	if fl&flagLeftJust != 0 {
		p.pad(' ', fw)
	}
}
