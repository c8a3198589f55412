// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minifloat implements reduced-precision floating-point value
// types: bfloat16, IEEE 754 half precision, and the four 8-bit float
// formats e4m3fn, e4m3fnuz, e5m2 and e5m2fnuz.
//
// Each type wraps a raw bit pattern and is immutable: arithmetic always
// produces new values, so independent values may be used concurrently
// without synchronization. All conversion and arithmetic goes through
// float32, which represents every narrow value exactly. Narrowing back
// rounds to nearest with ties to even; out-of-range magnitudes overflow
// to infinity where the format encodes one and saturate to the maximum
// finite value where it does not.
package minifloat

import "fmt"

// Format identifies a reduced-precision floating-point format.
type Format uint8

const (
	// FormatBFloat16 identifies the 16-bit brain floating-point format.
	FormatBFloat16 Format = iota
	// FormatFloat16 identifies the IEEE 754 half-precision format.
	FormatFloat16
	// FormatFloat8E4M3 identifies the finite-only 8-bit format with a
	// 4-bit exponent and 3-bit mantissa.
	FormatFloat8E4M3
	// FormatFloat8E4M3UZ identifies the e4m3 variant with no negative
	// zero and a single NaN sentinel.
	FormatFloat8E4M3UZ
	// FormatFloat8E5M2 identifies the 8-bit format with a 5-bit exponent,
	// 2-bit mantissa and standard infinity/NaN encodings.
	FormatFloat8E5M2
	// FormatFloat8E5M2UZ identifies the e5m2 variant with no negative
	// zero and a single NaN sentinel.
	FormatFloat8E5M2UZ
)

var (
	formatToSize = [...]uint64{
		FormatBFloat16:     2,
		FormatFloat16:      2,
		FormatFloat8E4M3:   1,
		FormatFloat8E4M3UZ: 1,
		FormatFloat8E5M2:   1,
		FormatFloat8E5M2UZ: 1,
	}
	formatToString = [...]string{
		FormatBFloat16:     "BF16",
		FormatFloat16:      "F16",
		FormatFloat8E4M3:   "F8_E4M3",
		FormatFloat8E4M3UZ: "F8_E4M3_UZ",
		FormatFloat8E5M2:   "F8_E5M2",
		FormatFloat8E5M2UZ: "F8_E5M2_UZ",
	}
	formatToLayout = [...]layout{
		FormatBFloat16:     bfloat16Layout,
		FormatFloat16:      float16Layout,
		FormatFloat8E4M3:   float8E4M3Layout,
		FormatFloat8E4M3UZ: float8E4M3UZLayout,
		FormatFloat8E5M2:   float8E5M2Layout,
		FormatFloat8E5M2UZ: float8E5M2UZLayout,
	}
	stringToFormat = map[string]Format{
		"BF16":       FormatBFloat16,
		"F16":        FormatFloat16,
		"F8_E4M3":    FormatFloat8E4M3,
		"F8_E4M3_UZ": FormatFloat8E4M3UZ,
		"F8_E5M2":    FormatFloat8E5M2,
		"F8_E5M2_UZ": FormatFloat8E5M2UZ,
	}
)

// Size returns the size in bytes of one value of this format.
// It panics if the Format value is invalid.
func (f Format) Size() uint64 {
	if f >= Format(len(formatToSize)) {
		panic(fmt.Errorf("cannot get size of invalid Format %d", f))
	}
	return formatToSize[f]
}

// String representation of a Format.
func (f Format) String() string {
	if f >= Format(len(formatToString)) {
		panic(fmt.Errorf("cannot get string representation of invalid Format %d", f))
	}
	return formatToString[f]
}

// layout returns the bit geometry of the format.
// It panics if the Format value is invalid.
func (f Format) layout() layout {
	if f >= Format(len(formatToLayout)) {
		panic(fmt.Errorf("cannot get layout of invalid Format %d", f))
	}
	return formatToLayout[f]
}

// MarshalJSON satisfies json.Marshaler interface.
func (f Format) MarshalJSON() ([]byte, error) {
	if f >= Format(len(formatToString)) {
		return nil, fmt.Errorf("cannot JSON-marshal invalid Format %d", f)
	}
	return []byte(`"` + formatToString[f] + `"`), nil
}

// UnmarshalJSON satisfies json.Unmarshaler interface.
func (f *Format) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("failed to JSON-unmarshal Format from value %s", s)
	}
	ft, ok := stringToFormat[s[1:len(s)-1]]
	if !ok {
		return fmt.Errorf("failed to JSON-unmarshal Format from value %s", s)
	}
	*f = ft
	return nil
}

// MarshalText satisfies encoding.TextMarshaler interface.
func (f Format) MarshalText() ([]byte, error) {
	if f >= Format(len(formatToString)) {
		return nil, fmt.Errorf("cannot text-marshal invalid Format %d", f)
	}
	return []byte(formatToString[f]), nil
}

// UnmarshalText satisfies encoding.TextUnmarshaler interface.
func (f *Format) UnmarshalText(text []byte) error {
	ft, ok := stringToFormat[string(text)]
	if !ok {
		return fmt.Errorf("failed to text-unmarshal Format from value %q", string(text))
	}
	*f = ft
	return nil
}
