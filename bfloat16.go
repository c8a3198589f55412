// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minifloat

import (
	"encoding/binary"
	"strconv"
)

// BFloat16 is a 16-bit brain floating-point value (1 sign bit, 8 exponent
// bits, 7 mantissa bits), stored as raw bits. It shares the exponent range
// of float32 at a fraction of the precision.
type BFloat16 uint16

// Limit constants, as raw bit patterns.
const (
	// BFloat16Max is the largest finite BFloat16 value, about 3.3895e38.
	BFloat16Max = BFloat16(0x7f7f)
	// BFloat16MinNormal is the smallest positive normal value, 2^-126.
	BFloat16MinNormal = BFloat16(0x0080)
	// BFloat16Epsilon is the gap between 1 and the next representable
	// value, 2^-7.
	BFloat16Epsilon = BFloat16(0x3c00)
	// BFloat16SmallestNonzero is the smallest positive subnormal value,
	// 2^-133.
	BFloat16SmallestNonzero = BFloat16(0x0001)
)

// BFloat16FromFloat32 rounds f to the nearest BFloat16.
func BFloat16FromFloat32(f float32) BFloat16 {
	return BFloat16(encode(f, bfloat16Layout))
}

// BFloat16FromFloat64 rounds f to the nearest BFloat16, going through the
// canonical 32-bit precision.
func BFloat16FromFloat64(f float64) BFloat16 {
	return BFloat16FromFloat32(float32(f))
}

// BFloat16FromBits reinterprets a raw bit pattern as a BFloat16.
func BFloat16FromBits(b uint16) BFloat16 {
	return BFloat16(b)
}

// BFloat16FromLEBytes reads a BFloat16 from the first two bytes of b in
// little-endian order.
func BFloat16FromLEBytes(b []byte) BFloat16 {
	return BFloat16(binary.LittleEndian.Uint16(b))
}

// BFloat16NaN returns the canonical quiet NaN.
func BFloat16NaN() BFloat16 {
	return BFloat16(bfloat16Layout.nan())
}

// BFloat16Inf returns positive infinity if sign >= 0, negative infinity
// otherwise.
func BFloat16Inf(sign int) BFloat16 {
	if sign < 0 {
		return BFloat16(bfloat16Layout.signMask() | bfloat16Layout.inf())
	}
	return BFloat16(bfloat16Layout.inf())
}

// Bits returns the raw bit pattern.
func (f BFloat16) Bits() uint16 { return uint16(f) }

// PutLEBytes writes the raw bits to the first two bytes of b in
// little-endian order.
func (f BFloat16) PutLEBytes(b []byte) { binary.LittleEndian.PutUint16(b, uint16(f)) }

// Float32 returns the exact float32 value of f.
func (f BFloat16) Float32() float32 { return decode(uint16(f), bfloat16Layout) }

// Float64 returns the exact float64 value of f.
func (f BFloat16) Float64() float64 { return float64(f.Float32()) }

// Format returns FormatBFloat16.
func (f BFloat16) Format() Format { return FormatBFloat16 }

// IsNaN reports whether f is a "not-a-number" value.
func (f BFloat16) IsNaN() bool { return bfloat16Layout.isNaN(uint16(f)) }

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f BFloat16) IsInf(sign int) bool {
	mag := uint16(f) &^ bfloat16Layout.signMask()
	if mag != bfloat16Layout.inf() {
		return false
	}
	return sign == 0 || (sign > 0) == (uint16(f) == mag)
}

// Signbit reports whether the sign bit is set.
func (f BFloat16) Signbit() bool { return uint16(f)&bfloat16Layout.signMask() != 0 }

// Neg returns f with its sign inverted.
func (f BFloat16) Neg() BFloat16 { return BFloat16FromFloat32(-f.Float32()) }

// Add returns the rounded sum f+g.
func (f BFloat16) Add(g BFloat16) BFloat16 { return BFloat16FromFloat32(f.Float32() + g.Float32()) }

// Sub returns the rounded difference f-g.
func (f BFloat16) Sub(g BFloat16) BFloat16 { return BFloat16FromFloat32(f.Float32() - g.Float32()) }

// Mul returns the rounded product f*g.
func (f BFloat16) Mul(g BFloat16) BFloat16 { return BFloat16FromFloat32(f.Float32() * g.Float32()) }

// Div returns the rounded quotient f/g.
func (f BFloat16) Div(g BFloat16) BFloat16 { return BFloat16FromFloat32(f.Float32() / g.Float32()) }

// Comparisons follow IEEE semantics: NaN is unordered and compares
// unequal to everything including itself, and zeros of both signs
// compare equal.

func (f BFloat16) Eq(g BFloat16) bool           { return f.Float32() == g.Float32() }
func (f BFloat16) Ne(g BFloat16) bool           { return f.Float32() != g.Float32() }
func (f BFloat16) Less(g BFloat16) bool         { return f.Float32() < g.Float32() }
func (f BFloat16) LessEqual(g BFloat16) bool    { return f.Float32() <= g.Float32() }
func (f BFloat16) Greater(g BFloat16) bool      { return f.Float32() > g.Float32() }
func (f BFloat16) GreaterEqual(g BFloat16) bool { return f.Float32() >= g.Float32() }

// String formats the decoded value, not the raw bits.
func (f BFloat16) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}
