// File: args.go
// Title: Argument Coercion
// Description: Maps the dynamic types of formatting arguments onto the
//              value shapes the conversions work with: magnitudes for
//              signed decimals, width-true bit patterns for the radix
//              conversions, float64 for the float family and text for
//              the string conversion.
// Version: v0.1.0
// Created: 2026-01-16
// Modified: 2026-01-16
//
// Change History:
// - 2026-01-16 v0.1.0: Initial implementation

package fmtx

import (
	"reflect"
)

// pointerHexDigits is the width of a %p field: two hex digits per
// pointer byte on the host platform.
var pointerHexDigits = int(reflect.TypeOf(uintptr(0)).Size()) * 2

func takeArg(args []interface{}, i *int) (interface{}, bool) {
	if *i >= len(args) {
		return nil, false
	}
	a := args[*i]
	*i = *i + 1
	return a, true
}

// intArg converts a * width or precision argument.
func intArg(a interface{}) (int, bool) {
	switch v := a.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	}
	return 0, false
}

// integerArg returns the magnitude of an integer argument together
// with its sign, the shape the decimal conversions consume. The
// magnitude of the most negative value survives the negation through
// two's complement wraparound.
func integerArg(a interface{}) (mag uint64, neg bool, ok bool) {
	var v int64
	switch t := a.(type) {
	case int:
		v = int64(t)
	case int8:
		v = int64(t)
	case int16:
		v = int64(t)
	case int32:
		v = int64(t)
	case int64:
		v = t
	case uint:
		return uint64(t), false, true
	case uint8:
		return uint64(t), false, true
	case uint16:
		return uint64(t), false, true
	case uint32:
		return uint64(t), false, true
	case uint64:
		return t, false, true
	case uintptr:
		return uint64(t), false, true
	default:
		return 0, false, false
	}
	if v < 0 {
		return uint64(-v), true, true
	}
	return uint64(v), false, true
}

// bitsArg returns the two's complement bit pattern of an integer
// argument at the argument's own width, the shape %u and the radix
// conversions consume: int8(-1) formats as ff, not as a sign-extended
// 64-bit pattern.
func bitsArg(a interface{}) (uint64, bool) {
	switch v := a.(type) {
	case int:
		return uint64(v), true
	case int8:
		return uint64(uint8(v)), true
	case int16:
		return uint64(uint16(v)), true
	case int32:
		return uint64(uint32(v)), true
	case int64:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uintptr:
		return uint64(v), true
	}
	return 0, false
}

func floatArg(a interface{}) (float64, bool) {
	switch v := a.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	return 0, false
}

// stringArg resolves a %s argument to text. Exactly one of s and b is
// set. A nil argument formats as "null".
func stringArg(a interface{}) (s string, b []byte, ok bool) {
	switch v := a.(type) {
	case nil:
		return "null", nil, true
	case string:
		return v, nil, true
	case []byte:
		if v == nil {
			return "null", nil, true
		}
		return "", v, true
	case error:
		return v.Error(), nil, true
	case interface{ String() string }:
		return v.String(), nil, true
	}
	return "", nil, false
}

// pointerArg resolves a %p argument to its address bits. Besides
// explicit uintptr values it accepts anything reference-shaped.
func pointerArg(a interface{}) (uint64, bool) {
	switch v := a.(type) {
	case nil:
		return 0, true
	case uintptr:
		return uint64(v), true
	}
	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Func,
		reflect.Map, reflect.Chan, reflect.Slice:
		return uint64(rv.Pointer()), true
	}
	return 0, false
}
