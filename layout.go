// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minifloat

// layout describes the bit geometry and special-value conventions of one
// reduced-precision floating-point format. It is pure constant data: the
// decoder and encoder are parameterized by a layout value instead of being
// written once per format.
//
// For 8-bit formats only the low byte of a bit pattern is meaningful.
type layout struct {
	width    uint // total bits, 8 or 16
	expBits  uint // exponent field width
	mantBits uint // mantissa field width
	bias     int  // exponent bias
	hasInf   bool // all-ones exponent reserved for Inf/NaN
	fnuz     bool // finite only, no -0; sign-bit-only pattern is the sole NaN
}

var (
	bfloat16Layout     = layout{width: 16, expBits: 8, mantBits: 7, bias: 127, hasInf: true}
	float16Layout      = layout{width: 16, expBits: 5, mantBits: 10, bias: 15, hasInf: true}
	float8E4M3Layout   = layout{width: 8, expBits: 4, mantBits: 3, bias: 7}
	float8E4M3UZLayout = layout{width: 8, expBits: 4, mantBits: 3, bias: 8, fnuz: true}
	float8E5M2Layout   = layout{width: 8, expBits: 5, mantBits: 2, bias: 15, hasInf: true}
	float8E5M2UZLayout = layout{width: 8, expBits: 5, mantBits: 2, bias: 16, fnuz: true}
)

func (l layout) signMask() uint16 { return 1 << (l.width - 1) }
func (l layout) expMask() uint16  { return 1<<l.expBits - 1 }
func (l layout) mantMask() uint16 { return 1<<l.mantBits - 1 }

// specialExponent reports whether the given exponent field value is
// reserved for infinities and NaNs rather than ordinary finite values.
// Finite-only formats reuse the top exponent for extra range, so it is
// never special for them.
func (l layout) specialExponent(exp uint16) bool {
	return l.hasInf && exp == l.expMask()
}

// isNaN reports whether bits encodes a NaN under this layout.
func (l layout) isNaN(bits uint16) bool {
	if l.fnuz {
		return bits == l.signMask()
	}
	mag := bits &^ l.signMask()
	if l.hasInf {
		return mag > l.expMask()<<l.mantBits
	}
	// fn: the single all-ones pattern per sign.
	return mag == l.expMask()<<l.mantBits|l.mantMask()
}

// nan returns the canonical quiet NaN bit pattern.
func (l layout) nan() uint16 {
	if l.fnuz {
		return l.signMask()
	}
	if l.hasInf {
		return l.expMask()<<l.mantBits | 1<<(l.mantBits-1)
	}
	return l.expMask()<<l.mantBits | l.mantMask()
}

// inf returns the positive infinity bit pattern. Only meaningful when
// hasInf is set.
func (l layout) inf() uint16 {
	return l.expMask() << l.mantBits
}

// maxFinite returns the bit pattern of the largest finite magnitude.
func (l layout) maxFinite() uint16 {
	switch {
	case l.hasInf:
		return (l.expMask()-1)<<l.mantBits | l.mantMask()
	case l.fnuz:
		return l.expMask()<<l.mantBits | l.mantMask()
	default:
		// fn: the top mantissa pattern at the top exponent is NaN.
		return l.expMask()<<l.mantBits | (l.mantMask() - 1)
	}
}

// minNormal returns the bit pattern of the smallest positive normal value.
func (l layout) minNormal() uint16 {
	return 1 << l.mantBits
}

// epsilon returns the bit pattern of the machine epsilon: the gap between
// one and the next representable value, 2^-mantBits. It is a normal value
// in every supported format.
func (l layout) epsilon() uint16 {
	return uint16(l.bias-int(l.mantBits)) << l.mantBits
}
