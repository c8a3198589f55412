// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minifloat

import "math"

// decode expands a raw bit pattern into its float32 value. float32 carries
// the full range and precision of every supported format, so decoding is
// exact for every bit pattern.
func decode(b uint16, l layout) float32 {
	if l.fnuz && b == l.signMask() {
		return float32(math.NaN())
	}

	neg := b&l.signMask() != 0
	exp := (b >> l.mantBits) & l.expMask()
	mant := b & l.mantMask()

	if l.specialExponent(exp) {
		if mant == 0 {
			if neg {
				return float32(math.Inf(-1))
			}
			return float32(math.Inf(1))
		}
		return float32(math.NaN())
	}
	if !l.hasInf && !l.fnuz && exp == l.expMask() && mant == l.mantMask() {
		// fn NaN; every other top-exponent pattern is an ordinary
		// finite value.
		return float32(math.NaN())
	}

	var v float64
	if exp == 0 {
		// Subnormal (or zero): mant/2^mantBits * 2^(1-bias).
		v = math.Ldexp(float64(mant), 1-l.bias-int(l.mantBits))
	} else {
		v = math.Ldexp(float64(mant|1<<l.mantBits), int(exp)-l.bias-int(l.mantBits))
	}
	if neg {
		v = -v
	}
	return float32(v)
}
