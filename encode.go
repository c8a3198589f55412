// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minifloat

import (
	"math"
	"math/bits"
)

const (
	f32MantBits = 23
	f32ExpMask  = 0xff
	f32Bias     = 127
)

// encode rounds f to the nearest value representable under l and returns
// its bit pattern. Rounding is round-to-nearest with ties to even at the
// granularity of the target mantissa. Magnitudes beyond the finite range
// overflow to infinity in formats that encode one and saturate to the
// signed maximum finite value in formats that do not.
func encode(f float32, l layout) uint16 {
	fb := math.Float32bits(f)
	sign := uint16(fb>>31) << (l.width - 1)
	mag := fb &^ (1 << 31)

	// NaN before any range handling: no format's NaN sentinel collides
	// with a saturated magnitude.
	if mag > f32ExpMask<<f32MantBits {
		if l.fnuz {
			return l.signMask()
		}
		return sign | l.nan()
	}
	if mag == f32ExpMask<<f32MantBits {
		if l.hasInf {
			return sign | l.inf()
		}
		// Finite-only formats have no encoding for an exact infinity,
		// so it degrades to NaN rather than to a finite value.
		if l.fnuz {
			return l.signMask()
		}
		return sign | l.nan()
	}
	if !l.hasInf && mag > math.Float32bits(decode(l.maxFinite(), l)) {
		// Saturate: overflow never produces infinity here.
		return sign | l.maxFinite()
	}
	if mag == 0 {
		if l.fnuz {
			// Signed zero collapses to the single zero encoding; the
			// sign-bit pattern is the NaN sentinel.
			return 0
		}
		return sign
	}

	// Exact decomposition |f| = sig * 2^(e-23) with sig normalized so
	// that its leading bit sits at position 23.
	e := int(mag>>f32MantBits) - f32Bias
	sig := mag & (1<<f32MantBits - 1)
	if mag >= 1<<f32MantBits {
		sig |= 1 << f32MantBits
	} else {
		e = 1 - f32Bias
	}
	if shift := f32MantBits - (bits.Len32(sig) - 1); shift > 0 {
		sig <<= uint(shift)
		e -= shift
	}

	if minExp := 1 - l.bias; e < minExp {
		// Subnormal target. A rounding carry out of the mantissa field
		// lands on the minimum normal encoding by construction.
		drop := uint(f32MantBits-l.mantBits) + uint(minExp-e)
		var m uint32
		if drop < 32 {
			m = roundNearestEven(sig, drop)
		}
		if m == 0 {
			if l.fnuz {
				return 0
			}
			return sign
		}
		return sign | uint16(m)
	}

	m := roundNearestEven(sig, f32MantBits-l.mantBits)
	if m >= 1<<(l.mantBits+1) {
		// The carry overflowed the mantissa field.
		m >>= 1
		e++
	}
	expField := e + l.bias
	if l.hasInf && expField >= int(l.expMask()) {
		return sign | l.inf()
	}
	return sign | uint16(expField)<<l.mantBits | uint16(m)&l.mantMask()
}

// roundNearestEven shifts x right by drop bits, rounding the discarded
// bits to nearest and to even on ties. drop must be in [1, 31].
func roundNearestEven(x uint32, drop uint) uint32 {
	half := uint32(1) << (drop - 1)
	rem := x & (1<<drop - 1)
	x >>= drop
	if rem > half || (rem == half && x&1 == 1) {
		x++
	}
	return x
}
