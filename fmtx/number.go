// File: number.go
// Title: Numeric Conversions
// Description: Digit generation and body layout for the decimal,
//              radix, float and hex-float conversions, including
//              thousands grouping, metric suffix scaling and the
//              decimal digit extraction built on strconv.
// Version: v0.1.0
// Created: 2026-01-16
// Modified: 2026-01-16
//
// Change History:
// - 2026-01-16 v0.1.0: Initial implementation

package fmtx

import (
	"math"
	"strconv"
)

// digitPair holds the two-character decimal expansions of 0..99. The
// decimal converter copies pairs instead of dividing per digit.
const digitPair = "" +
	"00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// The two tails hold the radix prefix and exponent marker characters
// beyond the sixteen digits.
const (
	hexDigitsLower = "0123456789abcdefxp"
	hexDigitsUpper = "0123456789ABCDEFXP"
)

// leadSign appends the sign prefix. A minus always wins; the space
// flag takes precedence over plus when both are set.
func leadSign(fl uint32, lead []byte) []byte {
	switch {
	case fl&flagNegative != 0:
		return append(lead, '-')
	case fl&flagSpace != 0:
		return append(lead, ' ')
	case fl&flagPlus != 0:
		return append(lead, '+')
	}
	return lead
}

// formatDecimal renders u right-to-left in eight-digit chunks through
// the pair table, or digit by digit when grouping commas interleave.
func (p *printer) formatDecimal(pc *piece, num []byte, u uint64) {
	s := len(num)
	gap := 0
	for {
		o := s - 8
		var n uint32
		if u >= 100000000 {
			n = uint32(u % 100000000)
			u /= 100000000
		} else {
			n = uint32(u)
			u = 0
		}
		if pc.fl&flagComma == 0 {
			for {
				s -= 2
				k := (n % 100) * 2
				copy(num[s:s+2], digitPair[k:k+2])
				n /= 100
				if n == 0 {
					break
				}
			}
		} else {
			for n != 0 {
				if gap == 3 {
					gap = 0
					s--
					num[s] = p.sep.Comma
					o--
				} else {
					gap++
					s--
					num[s] = byte(n%10) + '0'
					n /= 10
				}
			}
		}
		if u == 0 {
			// the pair table writes an even digit count; drop the
			// padding zero of odd-length values
			if s < len(num) && num[s] == '0' && s != len(num)-1 {
				s++
			}
			break
		}
		for s != o {
			if pc.fl&flagComma != 0 && gap == 3 {
				gap = 0
				s--
				num[s] = p.sep.Comma
				o--
			} else {
				gap++
				s--
				num[s] = '0'
			}
		}
	}
	pc.lead = leadSign(pc.fl, pc.lead)
	if s == len(num) {
		s--
		num[s] = '0'
	}
	pc.body = num[s:]
	pc.csPos = len(pc.body)
	pc.csGroup = 3
	if pc.pr < 0 {
		pc.pr = 0
	}
}

// formatRadix renders the bit pattern of u in a power-of-two base:
// binary for b/B, octal for o, hex for x/X. Precision zeros carry the
// grouping and are produced inside the loop; anything beyond the
// scratch buffer streams through the layout pass instead.
func (p *printer) formatRadix(pc *piece, num []byte, conv byte, u uint64) {
	var shift, group int
	digits := hexDigitsLower
	switch conv {
	case 'b', 'B':
		shift, group = 1, 8
		if conv == 'B' {
			digits = hexDigitsUpper
		}
		if pc.fl&flagAlt != 0 {
			pc.lead = append(pc.lead, '0', digits[0xb])
		}
	case 'o':
		shift, group = 3, 3
		if pc.fl&flagAlt != 0 {
			pc.lead = append(pc.lead, '0')
		}
	default:
		shift, group = 4, 4
		if conv == 'X' {
			digits = hexDigitsUpper
		}
		if pc.fl&flagAlt != 0 {
			pc.lead = append(pc.lead, '0', digits[16])
		}
	}
	if u == 0 {
		pc.lead = pc.lead[:0]
		if pc.pr == 0 {
			return
		}
	}
	s := len(num)
	gap := 0
	for {
		s--
		num[s] = digits[u&(1<<shift-1)]
		u >>= shift
		if u == 0 && len(num)-s >= pc.pr {
			break
		}
		if s == 0 {
			break
		}
		if pc.fl&flagComma != 0 {
			gap++
			if gap == group {
				gap = 0
				s--
				num[s] = p.sep.Comma
				if s == 0 {
					break
				}
			}
		}
	}
	pc.body = num[s:]
	pc.csPos = len(pc.body)
	pc.csGroup = group
}

// floatSpecial turns Inf and NaN into a plain text body.
func floatSpecial(pc *piece, special string) bool {
	if special == "" {
		return false
	}
	pc.str = special
	pc.isStr = true
	pc.pr = 0
	return true
}

// formatFloat handles the decimal float conversions. f scales by the
// metric divisor when requested and lays out a fixed-point body; e
// always uses the exponent form; g picks the shorter of the two after
// folding trailing zeros away.
func (p *printer) formatFloat(pc *piece, num []byte, conv byte, fv float64) {
	var dbuf [40]byte
	switch conv {
	case 'e', 'E':
		if pc.pr == -1 {
			pc.pr = 6
		}
		digits, dp, neg, special := floatDigits(dbuf[:], fv, pc.pr+1, true)
		if neg {
			pc.fl |= flagNegative
		}
		pc.lead = leadSign(pc.fl, pc.lead)
		if floatSpecial(pc, special) {
			return
		}
		p.floatExp(pc, num, digits, dp, conv == 'E')

	case 'g', 'G':
		if pc.pr == -1 {
			pc.pr = 6
		} else if pc.pr == 0 {
			pc.pr = 1
		}
		keep := pc.pr
		digits, dp, neg, special := floatDigits(dbuf[:], fv, pc.pr, true)
		if neg {
			pc.fl |= flagNegative
		}
		pc.lead = leadSign(pc.fl, pc.lead)
		if floatSpecial(pc, special) {
			return
		}
		pr := pc.pr
		if len(digits) > pr {
			digits = digits[:pr]
		}
		for len(digits) > 1 && pr > 0 && digits[len(digits)-1] == '0' {
			digits = digits[:len(digits)-1]
			pr--
		}
		if dp <= -4 || dp > keep {
			if pr > len(digits) {
				pr = len(digits) - 1
			} else if pr > 0 {
				pr--
			}
			pc.pr = pr
			p.floatExp(pc, num, digits, dp, conv == 'G')
			return
		}
		if dp > 0 {
			if dp < len(digits) {
				pc.pr = len(digits) - dp
			} else {
				pc.pr = 0
			}
		} else {
			if pr > len(digits) {
				pc.pr = -dp + len(digits)
			} else {
				pc.pr = -dp + pr
			}
		}
		p.floatFixed(pc, num, digits, dp, 0)

	default: // 'f', also the metric route of the integer conversions
		scale := 0
		if pc.fl&flagMetric != 0 {
			divisor := 1000.0
			if pc.fl&flagMetric1024 != 0 {
				divisor = 1024.0
			}
			for scale < 4 {
				if fv < divisor && fv > -divisor {
					break
				}
				fv /= divisor
				scale++
			}
		}
		if pc.pr == -1 {
			pc.pr = 6
		}
		digits, dp, neg, special := floatDigits(dbuf[:], fv, pc.pr, false)
		if neg {
			pc.fl |= flagNegative
		}
		pc.lead = leadSign(pc.fl, pc.lead)
		if floatSpecial(pc, special) {
			return
		}
		p.floatFixed(pc, num, digits, dp, scale)
	}
}

// floatFixed lays the digits out as plain decimal: grouped integer
// part, period, fraction, with the run of trailing zeros left to the
// layout pass. scale carries the metric divisor count for the suffix.
func (p *printer) floatFixed(pc *piece, num []byte, digits []byte, dp, scale int) {
	pr := pc.pr
	body := num[:0]
	if dp <= 0 {
		body = append(body, '0')
		if pr != 0 {
			body = append(body, p.sep.Period)
		}
		n := -dp
		if n > pr {
			n = pr
		}
		for k := 0; k < n; k++ {
			body = append(body, '0')
		}
		if len(digits)+n > pr {
			digits = digits[:pr-n]
		}
		body = append(body, digits...)
		pc.tz = pr - (n + len(digits))
		pc.csPos, pc.csGroup = 1, 3
	} else {
		comma := pc.fl&flagComma != 0
		cs := 0
		if comma {
			cs = (600 - dp) % 3
		}
		if dp >= len(digits) {
			// whole number, zero-extended out to the decimal point
			n := 0
			for {
				if comma {
					cs++
					if cs == 4 {
						cs = 0
						body = append(body, p.sep.Comma)
						continue
					}
				}
				body = append(body, digits[n])
				n++
				if n >= len(digits) {
					break
				}
			}
			for n < dp {
				if comma {
					cs++
					if cs == 4 {
						cs = 0
						body = append(body, p.sep.Comma)
						continue
					}
				}
				body = append(body, '0')
				n++
			}
			pc.csPos, pc.csGroup = len(body), 3
			if pr != 0 {
				body = append(body, p.sep.Period)
				pc.tz = pr
			}
		} else {
			n := 0
			for {
				if comma {
					cs++
					if cs == 4 {
						cs = 0
						body = append(body, p.sep.Comma)
						continue
					}
				}
				body = append(body, digits[n])
				n++
				if n >= dp {
					break
				}
			}
			pc.csPos, pc.csGroup = len(body), 3
			if pr != 0 {
				body = append(body, p.sep.Period)
			}
			if len(digits)-dp > pr {
				digits = digits[:pr+dp]
			}
			body = append(body, digits[n:]...)
			pc.tz = pr - (len(digits) - dp)
		}
	}
	pc.pr = 0
	pc.body = body

	if pc.fl&flagMetric != 0 {
		pc.tail = pc.tail[:0]
		if pc.fl&flagNoSpace == 0 {
			pc.tail = append(pc.tail, ' ')
		}
		if scale != 0 {
			if pc.fl&flagMetric1024 != 0 {
				pc.tail = append(pc.tail, "_KMGT"[scale])
				if pc.fl&flagJEDEC == 0 {
					pc.tail = append(pc.tail, 'i')
				}
			} else {
				pc.tail = append(pc.tail, "_kMGT"[scale])
			}
		}
	}
}

// floatExp lays the digits out in exponent form: one leading digit,
// period, fraction, and the e±dd tail with a two-digit minimum
// exponent.
func (p *printer) floatExp(pc *piece, num []byte, digits []byte, dp int, upper bool) {
	pr := pc.pr
	body := num[:0]
	body = append(body, digits[0])
	if pr != 0 {
		body = append(body, p.sep.Period)
	}
	if len(digits)-1 > pr {
		digits = digits[:pr+1]
	}
	body = append(body, digits[1:]...)
	pc.tz = pr - (len(digits) - 1)
	marker := hexDigitsLower[0xe]
	if upper {
		marker = hexDigitsUpper[0xe]
	}
	pc.tail = appendExponent(pc.tail[:0], marker, dp-1, 2)
	pc.pr = 0
	pc.csPos, pc.csGroup = 1, 3
	pc.body = body
}

// formatHexFloat renders the binary mantissa in hex with a decimal
// binary exponent. The default precision is six mantissa digits; at
// most thirteen are significant and the rest stream as zeros. Inf and
// NaN format like the decimal conversions instead of exposing their
// bit patterns.
func (p *printer) formatHexFloat(pc *piece, num []byte, conv byte, fv float64) {
	digits := hexDigitsLower
	if conv == 'A' {
		digits = hexDigitsUpper
	}
	if pc.pr == -1 {
		pc.pr = 6
	}
	pr := pc.pr
	bits := math.Float64bits(fv)
	if bits>>63 != 0 {
		pc.fl |= flagNegative
	}
	pc.lead = leadSign(pc.fl, pc.lead)
	exp := int(bits >> 52 & 0x7FF)
	mant := bits & (1<<52 - 1)
	if exp == 0x7FF {
		special := "Inf"
		if mant != 0 {
			special = "NaN"
		}
		floatSpecial(pc, special)
		return
	}
	dp := exp - 1023
	if exp == 0 {
		dp = 0
		if mant != 0 {
			dp = -1022
		}
	} else {
		mant |= 1 << 52
	}
	n64 := mant << 8
	if pr < 15 {
		n64 += uint64(8) << 56 >> uint(pr*4)
	}
	pc.lead = append(pc.lead, '0', 'x')
	body := num[:0]
	body = append(body, digits[n64>>60&15])
	n64 <<= 4
	if pr != 0 {
		body = append(body, p.sep.Period)
	}
	n := pr
	if n > 13 {
		n = 13
	}
	pc.tz = pr - n
	pc.pr = 0
	for k := 0; k < n; k++ {
		body = append(body, digits[n64>>60&15])
		n64 <<= 4
	}
	pc.body = body
	pc.tail = appendExponent(pc.tail[:0], digits[17], dp, 1)
	pc.csPos, pc.csGroup = 1, 3
}

// floatDigits extracts the decimal digits of v: in fraction mode
// rounded n places after the decimal point, in significant mode to n
// significant digits. It reports the digit string of the magnitude
// without leading zeros, the decimal point position relative to its
// start, and the sign. Inf and NaN come back in special with no
// digits. scratch backs the result and grows when n demands it.
func floatDigits(scratch []byte, v float64, n int, significant bool) (digits []byte, dp int, neg bool, special string) {
	neg = math.Signbit(v)
	if math.IsNaN(v) {
		return nil, 0, neg, "NaN"
	}
	if math.IsInf(v, 0) {
		return nil, 0, neg, "Inf"
	}
	if neg {
		v = -v
	}
	if v == 0 {
		return append(scratch[:0], '0'), 1, neg, ""
	}
	if significant {
		if n < 1 {
			n = 1
		}
		b := strconv.AppendFloat(scratch[:0], v, 'e', n-1, 64)
		w, i := 1, 1
		if b[i] == '.' {
			i++
		}
		for i < len(b) && b[i] != 'e' {
			b[w] = b[i]
			w++
			i++
		}
		i++
		esign := 1
		if b[i] == '-' {
			esign = -1
		}
		i++
		exp := 0
		for ; i < len(b); i++ {
			exp = exp*10 + int(b[i]-'0')
		}
		return b[:w], esign*exp + 1, neg, ""
	}
	b := strconv.AppendFloat(scratch[:0], v, 'f', n, 64)
	dot, w := -1, 0
	for i := 0; i < len(b); i++ {
		if b[i] == '.' {
			dot = w
			continue
		}
		b[w] = b[i]
		w++
	}
	digits = b[:w]
	dp = w
	if dot >= 0 {
		dp = dot
	}
	for len(digits) > 0 && digits[0] == '0' {
		digits = digits[1:]
		dp--
	}
	if len(digits) == 0 {
		// the value rounded away entirely
		return append(scratch[:0], '0'), 1, neg, ""
	}
	return digits, dp, neg, ""
}

// appendExponent writes the exponent tail: marker, explicit sign, and
// the decimal exponent padded to at least minDigits digits.
func appendExponent(dst []byte, marker byte, e, minDigits int) []byte {
	dst = append(dst, marker)
	if e < 0 {
		dst = append(dst, '-')
		e = -e
	} else {
		dst = append(dst, '+')
	}
	var tmp [8]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte(e%10) + '0'
		e /= 10
		if e == 0 {
			break
		}
	}
	for len(tmp)-i < minDigits {
		i--
		tmp[i] = '0'
	}
	return append(dst, tmp[i:]...)
}
