// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minifloat

import "strconv"

// Float8E4M3 is an 8-bit floating-point value with a 4-bit exponent and a
// 3-bit mantissa, stored as raw bits. It follows the finite-only ("fn")
// convention: there is no infinity, the top exponent pattern is reused for
// ordinary finite values, and the single all-ones pattern per sign encodes
// NaN. Out-of-range results saturate to the signed maximum finite value.
type Float8E4M3 uint8

// Limit constants, as raw bit patterns.
const (
	// Float8E4M3Max is the largest finite value, 448.
	Float8E4M3Max = Float8E4M3(0x7e)
	// Float8E4M3MinNormal is the smallest positive normal value, 2^-6.
	Float8E4M3MinNormal = Float8E4M3(0x08)
	// Float8E4M3Epsilon is the gap between 1 and the next representable
	// value, 2^-3.
	Float8E4M3Epsilon = Float8E4M3(0x20)
	// Float8E4M3SmallestNonzero is the smallest positive subnormal
	// value, 2^-9.
	Float8E4M3SmallestNonzero = Float8E4M3(0x01)
)

// Float8E4M3FromFloat32 rounds f to the nearest Float8E4M3.
func Float8E4M3FromFloat32(f float32) Float8E4M3 {
	return Float8E4M3(encode(f, float8E4M3Layout))
}

// Float8E4M3FromFloat64 rounds f to the nearest Float8E4M3, going through
// the canonical 32-bit precision.
func Float8E4M3FromFloat64(f float64) Float8E4M3 {
	return Float8E4M3FromFloat32(float32(f))
}

// Float8E4M3FromBits reinterprets a raw bit pattern as a Float8E4M3.
func Float8E4M3FromBits(b uint8) Float8E4M3 {
	return Float8E4M3(b)
}

// Float8E4M3NaN returns the canonical quiet NaN.
func Float8E4M3NaN() Float8E4M3 {
	return Float8E4M3(float8E4M3Layout.nan())
}

// Bits returns the raw bit pattern.
func (f Float8E4M3) Bits() uint8 { return uint8(f) }

// Float32 returns the exact float32 value of f.
func (f Float8E4M3) Float32() float32 { return decode(uint16(f), float8E4M3Layout) }

// Float64 returns the exact float64 value of f.
func (f Float8E4M3) Float64() float64 { return float64(f.Float32()) }

// Format returns FormatFloat8E4M3.
func (f Float8E4M3) Format() Format { return FormatFloat8E4M3 }

// IsNaN reports whether f is a "not-a-number" value.
func (f Float8E4M3) IsNaN() bool { return float8E4M3Layout.isNaN(uint16(f)) }

// Signbit reports whether the sign bit is set.
func (f Float8E4M3) Signbit() bool { return uint16(f)&float8E4M3Layout.signMask() != 0 }

// Neg returns f with its sign inverted.
func (f Float8E4M3) Neg() Float8E4M3 { return Float8E4M3FromFloat32(-f.Float32()) }

// Add returns the rounded sum f+g.
func (f Float8E4M3) Add(g Float8E4M3) Float8E4M3 {
	return Float8E4M3FromFloat32(f.Float32() + g.Float32())
}

// Sub returns the rounded difference f-g.
func (f Float8E4M3) Sub(g Float8E4M3) Float8E4M3 {
	return Float8E4M3FromFloat32(f.Float32() - g.Float32())
}

// Mul returns the rounded product f*g.
func (f Float8E4M3) Mul(g Float8E4M3) Float8E4M3 {
	return Float8E4M3FromFloat32(f.Float32() * g.Float32())
}

// Div returns the rounded quotient f/g.
func (f Float8E4M3) Div(g Float8E4M3) Float8E4M3 {
	return Float8E4M3FromFloat32(f.Float32() / g.Float32())
}

// Comparisons follow IEEE semantics: NaN is unordered and compares
// unequal to everything including itself, and zeros of both signs
// compare equal.

func (f Float8E4M3) Eq(g Float8E4M3) bool           { return f.Float32() == g.Float32() }
func (f Float8E4M3) Ne(g Float8E4M3) bool           { return f.Float32() != g.Float32() }
func (f Float8E4M3) Less(g Float8E4M3) bool         { return f.Float32() < g.Float32() }
func (f Float8E4M3) LessEqual(g Float8E4M3) bool    { return f.Float32() <= g.Float32() }
func (f Float8E4M3) Greater(g Float8E4M3) bool      { return f.Float32() > g.Float32() }
func (f Float8E4M3) GreaterEqual(g Float8E4M3) bool { return f.Float32() >= g.Float32() }

// String formats the decoded value, not the raw bits.
func (f Float8E4M3) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}

// Float8E4M3UZ is the e4m3 variant with no infinity and no negative zero
// ("fnuz"): the sign-bit-only pattern 0x80 is the sole NaN encoding, and
// every other bit pattern is finite.
type Float8E4M3UZ uint8

// Limit constants, as raw bit patterns.
const (
	// Float8E4M3UZMax is the largest finite value, 240.
	Float8E4M3UZMax = Float8E4M3UZ(0x7f)
	// Float8E4M3UZMinNormal is the smallest positive normal value, 2^-7.
	Float8E4M3UZMinNormal = Float8E4M3UZ(0x08)
	// Float8E4M3UZEpsilon is the gap between 1 and the next
	// representable value, 2^-3.
	Float8E4M3UZEpsilon = Float8E4M3UZ(0x28)
	// Float8E4M3UZSmallestNonzero is the smallest positive subnormal
	// value, 2^-10.
	Float8E4M3UZSmallestNonzero = Float8E4M3UZ(0x01)
)

// Float8E4M3UZFromFloat32 rounds f to the nearest Float8E4M3UZ.
func Float8E4M3UZFromFloat32(f float32) Float8E4M3UZ {
	return Float8E4M3UZ(encode(f, float8E4M3UZLayout))
}

// Float8E4M3UZFromFloat64 rounds f to the nearest Float8E4M3UZ, going
// through the canonical 32-bit precision.
func Float8E4M3UZFromFloat64(f float64) Float8E4M3UZ {
	return Float8E4M3UZFromFloat32(float32(f))
}

// Float8E4M3UZFromBits reinterprets a raw bit pattern as a Float8E4M3UZ.
func Float8E4M3UZFromBits(b uint8) Float8E4M3UZ {
	return Float8E4M3UZ(b)
}

// Float8E4M3UZNaN returns the NaN sentinel, the only NaN encoding of the
// format.
func Float8E4M3UZNaN() Float8E4M3UZ {
	return Float8E4M3UZ(float8E4M3UZLayout.nan())
}

func (f Float8E4M3UZ) Bits() uint8      { return uint8(f) }
func (f Float8E4M3UZ) Float32() float32 { return decode(uint16(f), float8E4M3UZLayout) }
func (f Float8E4M3UZ) Float64() float64 { return float64(f.Float32()) }
func (f Float8E4M3UZ) Format() Format   { return FormatFloat8E4M3UZ }
func (f Float8E4M3UZ) IsNaN() bool      { return float8E4M3UZLayout.isNaN(uint16(f)) }
func (f Float8E4M3UZ) Signbit() bool    { return uint16(f)&float8E4M3UZLayout.signMask() != 0 }

func (f Float8E4M3UZ) Neg() Float8E4M3UZ { return Float8E4M3UZFromFloat32(-f.Float32()) }

func (f Float8E4M3UZ) Add(g Float8E4M3UZ) Float8E4M3UZ {
	return Float8E4M3UZFromFloat32(f.Float32() + g.Float32())
}

func (f Float8E4M3UZ) Sub(g Float8E4M3UZ) Float8E4M3UZ {
	return Float8E4M3UZFromFloat32(f.Float32() - g.Float32())
}

func (f Float8E4M3UZ) Mul(g Float8E4M3UZ) Float8E4M3UZ {
	return Float8E4M3UZFromFloat32(f.Float32() * g.Float32())
}

func (f Float8E4M3UZ) Div(g Float8E4M3UZ) Float8E4M3UZ {
	return Float8E4M3UZFromFloat32(f.Float32() / g.Float32())
}

func (f Float8E4M3UZ) Eq(g Float8E4M3UZ) bool           { return f.Float32() == g.Float32() }
func (f Float8E4M3UZ) Ne(g Float8E4M3UZ) bool           { return f.Float32() != g.Float32() }
func (f Float8E4M3UZ) Less(g Float8E4M3UZ) bool         { return f.Float32() < g.Float32() }
func (f Float8E4M3UZ) LessEqual(g Float8E4M3UZ) bool    { return f.Float32() <= g.Float32() }
func (f Float8E4M3UZ) Greater(g Float8E4M3UZ) bool      { return f.Float32() > g.Float32() }
func (f Float8E4M3UZ) GreaterEqual(g Float8E4M3UZ) bool { return f.Float32() >= g.Float32() }

// String formats the decoded value, not the raw bits.
func (f Float8E4M3UZ) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}

// Float8E5M2 is an 8-bit floating-point value with a 5-bit exponent and a
// 2-bit mantissa, stored as raw bits. It keeps the standard IEEE-style
// infinity and NaN encodings within 8 bits.
type Float8E5M2 uint8

// Limit constants, as raw bit patterns.
const (
	// Float8E5M2Max is the largest finite value, 57344.
	Float8E5M2Max = Float8E5M2(0x7b)
	// Float8E5M2MinNormal is the smallest positive normal value, 2^-14.
	Float8E5M2MinNormal = Float8E5M2(0x04)
	// Float8E5M2Epsilon is the gap between 1 and the next representable
	// value, 2^-2.
	Float8E5M2Epsilon = Float8E5M2(0x34)
	// Float8E5M2SmallestNonzero is the smallest positive subnormal
	// value, 2^-16.
	Float8E5M2SmallestNonzero = Float8E5M2(0x01)
)

// Float8E5M2FromFloat32 rounds f to the nearest Float8E5M2.
func Float8E5M2FromFloat32(f float32) Float8E5M2 {
	return Float8E5M2(encode(f, float8E5M2Layout))
}

// Float8E5M2FromFloat64 rounds f to the nearest Float8E5M2, going through
// the canonical 32-bit precision.
func Float8E5M2FromFloat64(f float64) Float8E5M2 {
	return Float8E5M2FromFloat32(float32(f))
}

// Float8E5M2FromBits reinterprets a raw bit pattern as a Float8E5M2.
func Float8E5M2FromBits(b uint8) Float8E5M2 {
	return Float8E5M2(b)
}

// Float8E5M2NaN returns the canonical quiet NaN.
func Float8E5M2NaN() Float8E5M2 {
	return Float8E5M2(float8E5M2Layout.nan())
}

// Float8E5M2Inf returns positive infinity if sign >= 0, negative infinity
// otherwise.
func Float8E5M2Inf(sign int) Float8E5M2 {
	if sign < 0 {
		return Float8E5M2(float8E5M2Layout.signMask() | float8E5M2Layout.inf())
	}
	return Float8E5M2(float8E5M2Layout.inf())
}

func (f Float8E5M2) Bits() uint8      { return uint8(f) }
func (f Float8E5M2) Float32() float32 { return decode(uint16(f), float8E5M2Layout) }
func (f Float8E5M2) Float64() float64 { return float64(f.Float32()) }
func (f Float8E5M2) Format() Format   { return FormatFloat8E5M2 }
func (f Float8E5M2) IsNaN() bool      { return float8E5M2Layout.isNaN(uint16(f)) }
func (f Float8E5M2) Signbit() bool    { return uint16(f)&float8E5M2Layout.signMask() != 0 }

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Float8E5M2) IsInf(sign int) bool {
	mag := uint16(f) &^ float8E5M2Layout.signMask()
	if mag != float8E5M2Layout.inf() {
		return false
	}
	return sign == 0 || (sign > 0) == (uint16(f) == mag)
}

func (f Float8E5M2) Neg() Float8E5M2 { return Float8E5M2FromFloat32(-f.Float32()) }

func (f Float8E5M2) Add(g Float8E5M2) Float8E5M2 {
	return Float8E5M2FromFloat32(f.Float32() + g.Float32())
}

func (f Float8E5M2) Sub(g Float8E5M2) Float8E5M2 {
	return Float8E5M2FromFloat32(f.Float32() - g.Float32())
}

func (f Float8E5M2) Mul(g Float8E5M2) Float8E5M2 {
	return Float8E5M2FromFloat32(f.Float32() * g.Float32())
}

func (f Float8E5M2) Div(g Float8E5M2) Float8E5M2 {
	return Float8E5M2FromFloat32(f.Float32() / g.Float32())
}

func (f Float8E5M2) Eq(g Float8E5M2) bool           { return f.Float32() == g.Float32() }
func (f Float8E5M2) Ne(g Float8E5M2) bool           { return f.Float32() != g.Float32() }
func (f Float8E5M2) Less(g Float8E5M2) bool         { return f.Float32() < g.Float32() }
func (f Float8E5M2) LessEqual(g Float8E5M2) bool    { return f.Float32() <= g.Float32() }
func (f Float8E5M2) Greater(g Float8E5M2) bool      { return f.Float32() > g.Float32() }
func (f Float8E5M2) GreaterEqual(g Float8E5M2) bool { return f.Float32() >= g.Float32() }

// String formats the decoded value, not the raw bits.
func (f Float8E5M2) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}

// Float8E5M2UZ is the e5m2 variant with no infinity and no negative zero
// ("fnuz"): the sign-bit-only pattern 0x80 is the sole NaN encoding, and
// every other bit pattern is finite.
type Float8E5M2UZ uint8

// Limit constants, as raw bit patterns.
const (
	// Float8E5M2UZMax is the largest finite value, 57344.
	Float8E5M2UZMax = Float8E5M2UZ(0x7f)
	// Float8E5M2UZMinNormal is the smallest positive normal value,
	// 2^-15.
	Float8E5M2UZMinNormal = Float8E5M2UZ(0x04)
	// Float8E5M2UZEpsilon is the gap between 1 and the next
	// representable value, 2^-2.
	Float8E5M2UZEpsilon = Float8E5M2UZ(0x38)
	// Float8E5M2UZSmallestNonzero is the smallest positive subnormal
	// value, 2^-17.
	Float8E5M2UZSmallestNonzero = Float8E5M2UZ(0x01)
)

// Float8E5M2UZFromFloat32 rounds f to the nearest Float8E5M2UZ.
func Float8E5M2UZFromFloat32(f float32) Float8E5M2UZ {
	return Float8E5M2UZ(encode(f, float8E5M2UZLayout))
}

// Float8E5M2UZFromFloat64 rounds f to the nearest Float8E5M2UZ, going
// through the canonical 32-bit precision.
func Float8E5M2UZFromFloat64(f float64) Float8E5M2UZ {
	return Float8E5M2UZFromFloat32(float32(f))
}

// Float8E5M2UZFromBits reinterprets a raw bit pattern as a Float8E5M2UZ.
func Float8E5M2UZFromBits(b uint8) Float8E5M2UZ {
	return Float8E5M2UZ(b)
}

// Float8E5M2UZNaN returns the NaN sentinel, the only NaN encoding of the
// format.
func Float8E5M2UZNaN() Float8E5M2UZ {
	return Float8E5M2UZ(float8E5M2UZLayout.nan())
}

func (f Float8E5M2UZ) Bits() uint8      { return uint8(f) }
func (f Float8E5M2UZ) Float32() float32 { return decode(uint16(f), float8E5M2UZLayout) }
func (f Float8E5M2UZ) Float64() float64 { return float64(f.Float32()) }
func (f Float8E5M2UZ) Format() Format   { return FormatFloat8E5M2UZ }
func (f Float8E5M2UZ) IsNaN() bool      { return float8E5M2UZLayout.isNaN(uint16(f)) }
func (f Float8E5M2UZ) Signbit() bool    { return uint16(f)&float8E5M2UZLayout.signMask() != 0 }

func (f Float8E5M2UZ) Neg() Float8E5M2UZ { return Float8E5M2UZFromFloat32(-f.Float32()) }

func (f Float8E5M2UZ) Add(g Float8E5M2UZ) Float8E5M2UZ {
	return Float8E5M2UZFromFloat32(f.Float32() + g.Float32())
}

func (f Float8E5M2UZ) Sub(g Float8E5M2UZ) Float8E5M2UZ {
	return Float8E5M2UZFromFloat32(f.Float32() - g.Float32())
}

func (f Float8E5M2UZ) Mul(g Float8E5M2UZ) Float8E5M2UZ {
	return Float8E5M2UZFromFloat32(f.Float32() * g.Float32())
}

func (f Float8E5M2UZ) Div(g Float8E5M2UZ) Float8E5M2UZ {
	return Float8E5M2UZFromFloat32(f.Float32() / g.Float32())
}

func (f Float8E5M2UZ) Eq(g Float8E5M2UZ) bool           { return f.Float32() == g.Float32() }
func (f Float8E5M2UZ) Ne(g Float8E5M2UZ) bool           { return f.Float32() != g.Float32() }
func (f Float8E5M2UZ) Less(g Float8E5M2UZ) bool         { return f.Float32() < g.Float32() }
func (f Float8E5M2UZ) LessEqual(g Float8E5M2UZ) bool    { return f.Float32() <= g.Float32() }
func (f Float8E5M2UZ) Greater(g Float8E5M2UZ) bool      { return f.Float32() > g.Float32() }
func (f Float8E5M2UZ) GreaterEqual(g Float8E5M2UZ) bool { return f.Float32() >= g.Float32() }

// String formats the decoded value, not the raw bits.
func (f Float8E5M2UZ) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}
