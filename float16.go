// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minifloat

import (
	"encoding/binary"
	"strconv"
)

// Float16 is an IEEE 754 half-precision floating-point value (1 sign bit,
// 5 exponent bits, 10 mantissa bits), stored as raw bits.
type Float16 uint16

// Limit constants, as raw bit patterns.
const (
	// Float16Max is the largest finite Float16 value, 65504.
	Float16Max = Float16(0x7bff)
	// Float16MinNormal is the smallest positive normal value, 2^-14.
	Float16MinNormal = Float16(0x0400)
	// Float16Epsilon is the gap between 1 and the next representable
	// value, 2^-10.
	Float16Epsilon = Float16(0x1400)
	// Float16SmallestNonzero is the smallest positive subnormal value,
	// 2^-24.
	Float16SmallestNonzero = Float16(0x0001)
)

// Float16FromFloat32 rounds f to the nearest Float16.
func Float16FromFloat32(f float32) Float16 {
	return Float16(encode(f, float16Layout))
}

// Float16FromFloat64 rounds f to the nearest Float16, going through the
// canonical 32-bit precision.
func Float16FromFloat64(f float64) Float16 {
	return Float16FromFloat32(float32(f))
}

// Float16FromBits reinterprets a raw bit pattern as a Float16.
func Float16FromBits(b uint16) Float16 {
	return Float16(b)
}

// Float16FromLEBytes reads a Float16 from the first two bytes of b in
// little-endian order.
func Float16FromLEBytes(b []byte) Float16 {
	return Float16(binary.LittleEndian.Uint16(b))
}

// Float16NaN returns the canonical quiet NaN.
func Float16NaN() Float16 {
	return Float16(float16Layout.nan())
}

// Float16Inf returns positive infinity if sign >= 0, negative infinity
// otherwise.
func Float16Inf(sign int) Float16 {
	if sign < 0 {
		return Float16(float16Layout.signMask() | float16Layout.inf())
	}
	return Float16(float16Layout.inf())
}

// Bits returns the raw bit pattern.
func (f Float16) Bits() uint16 { return uint16(f) }

// PutLEBytes writes the raw bits to the first two bytes of b in
// little-endian order.
func (f Float16) PutLEBytes(b []byte) { binary.LittleEndian.PutUint16(b, uint16(f)) }

// Float32 returns the exact float32 value of f.
func (f Float16) Float32() float32 { return decode(uint16(f), float16Layout) }

// Float64 returns the exact float64 value of f.
func (f Float16) Float64() float64 { return float64(f.Float32()) }

// Format returns FormatFloat16.
func (f Float16) Format() Format { return FormatFloat16 }

// IsNaN reports whether f is a "not-a-number" value.
func (f Float16) IsNaN() bool { return float16Layout.isNaN(uint16(f)) }

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Float16) IsInf(sign int) bool {
	mag := uint16(f) &^ float16Layout.signMask()
	if mag != float16Layout.inf() {
		return false
	}
	return sign == 0 || (sign > 0) == (uint16(f) == mag)
}

// Signbit reports whether the sign bit is set.
func (f Float16) Signbit() bool { return uint16(f)&float16Layout.signMask() != 0 }

// Neg returns f with its sign inverted.
func (f Float16) Neg() Float16 { return Float16FromFloat32(-f.Float32()) }

// Add returns the rounded sum f+g.
func (f Float16) Add(g Float16) Float16 { return Float16FromFloat32(f.Float32() + g.Float32()) }

// Sub returns the rounded difference f-g.
func (f Float16) Sub(g Float16) Float16 { return Float16FromFloat32(f.Float32() - g.Float32()) }

// Mul returns the rounded product f*g.
func (f Float16) Mul(g Float16) Float16 { return Float16FromFloat32(f.Float32() * g.Float32()) }

// Div returns the rounded quotient f/g.
func (f Float16) Div(g Float16) Float16 { return Float16FromFloat32(f.Float32() / g.Float32()) }

// Comparisons follow IEEE semantics: NaN is unordered and compares
// unequal to everything including itself, and zeros of both signs
// compare equal.

func (f Float16) Eq(g Float16) bool           { return f.Float32() == g.Float32() }
func (f Float16) Ne(g Float16) bool           { return f.Float32() != g.Float32() }
func (f Float16) Less(g Float16) bool         { return f.Float32() < g.Float32() }
func (f Float16) LessEqual(g Float16) bool    { return f.Float32() <= g.Float32() }
func (f Float16) Greater(g Float16) bool      { return f.Float32() > g.Float32() }
func (f Float16) GreaterEqual(g Float16) bool { return f.Float32() >= g.Float32() }

// String formats the decoded value, not the raw bits.
func (f Float16) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}
