// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minifloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat8E4M3_conversion(t *testing.T) {
	testCases := []struct {
		name string
		bits uint8
		want float32
	}{
		{"zero", 0x00, 0},
		{"one", 0x38, 1},
		{"minus one", 0xb8, -1},
		{"half", 0x30, 0.5},
		{"epsilon", 0x20, 0.125},
		{"max", 0x7e, 448},
		{"min normal", 0x08, 0.015625},
		{"min subnormal", 0x01, 0.001953125},
		{"max subnormal", 0x07, 0.013671875},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := Float8E4M3FromBits(tc.bits)
			assert.Equal(t, tc.want, v.Float32())
			assert.Equal(t, v, Float8E4M3FromFloat32(tc.want), "round trip")
			assert.Equal(t, tc.bits, v.Bits())
		})
	}

	assert.True(t, Float8E4M3FromBits(0x7f).IsNaN())
	assert.True(t, Float8E4M3FromBits(0xff).IsNaN())
	assert.True(t, Float8E4M3FromFloat32(float32(math.NaN())).IsNaN())
}

func TestFloat8E4M3UZ_conversion(t *testing.T) {
	testCases := []struct {
		name string
		bits uint8
		want float32
	}{
		{"zero", 0x00, 0},
		{"one", 0x40, 1},
		{"minus one", 0xc0, -1},
		{"epsilon", 0x28, 0.125},
		{"max", 0x7f, 240},
		{"negated max", 0xff, -240},
		{"min normal", 0x08, 0.0078125},
		{"min subnormal", 0x01, 0.0009765625},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := Float8E4M3UZFromBits(tc.bits)
			assert.Equal(t, tc.want, v.Float32())
			assert.Equal(t, v, Float8E4M3UZFromFloat32(tc.want), "round trip")
		})
	}

	assert.True(t, Float8E4M3UZFromBits(0x80).IsNaN())
	assert.True(t, Float8E4M3UZFromFloat32(float32(math.NaN())).IsNaN())
}

func TestFloat8E5M2_conversion(t *testing.T) {
	testCases := []struct {
		name string
		bits uint8
		want float32
	}{
		{"zero", 0x00, 0},
		{"one", 0x3c, 1},
		{"minus one", 0xbc, -1},
		{"epsilon", 0x34, 0.25},
		{"max", 0x7b, 57344},
		{"min normal", 0x04, 6.103515625e-05},
		{"min subnormal", 0x01, 1.52587890625e-05},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := Float8E5M2FromBits(tc.bits)
			assert.Equal(t, tc.want, v.Float32())
			assert.Equal(t, v, Float8E5M2FromFloat32(tc.want), "round trip")
		})
	}

	assert.True(t, Float8E5M2FromBits(0x7c).IsInf(1))
	assert.True(t, Float8E5M2FromBits(0xfc).IsInf(-1))
	assert.True(t, Float8E5M2FromBits(0x7e).IsNaN())
	assert.True(t, Float8E5M2FromBits(0x7d).IsNaN())
	assert.Equal(t, Float8E5M2Inf(1), Float8E5M2FromFloat32(float32(math.Inf(1))))
}

func TestFloat8E5M2UZ_conversion(t *testing.T) {
	testCases := []struct {
		name string
		bits uint8
		want float32
	}{
		{"zero", 0x00, 0},
		{"one", 0x40, 1},
		{"minus one", 0xc0, -1},
		{"epsilon", 0x38, 0.25},
		{"max", 0x7f, 57344},
		{"min normal", 0x04, 3.0517578125e-05},
		{"min subnormal", 0x01, 7.62939453125e-06},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := Float8E5M2UZFromBits(tc.bits)
			assert.Equal(t, tc.want, v.Float32())
			assert.Equal(t, v, Float8E5M2UZFromFloat32(tc.want), "round trip")
		})
	}

	assert.True(t, Float8E5M2UZFromBits(0x80).IsNaN())
	assert.True(t, math.IsNaN(float64(Float8E5M2UZFromBits(0x80).Float32())), "sentinel is NaN, not negative zero")
}

func TestFloat8_formats(t *testing.T) {
	assert.Equal(t, FormatFloat8E4M3, Float8E4M3FromFloat32(1).Format())
	assert.Equal(t, FormatFloat8E4M3UZ, Float8E4M3UZFromFloat32(1).Format())
	assert.Equal(t, FormatFloat8E5M2, Float8E5M2FromFloat32(1).Format())
	assert.Equal(t, FormatFloat8E5M2UZ, Float8E5M2UZFromFloat32(1).Format())
}

func TestFloat8_strings(t *testing.T) {
	assert.Equal(t, "448", Float8E4M3FromFloat32(448).String())
	assert.Equal(t, "-240", Float8E4M3UZFromFloat32(-240).String())
	assert.Equal(t, "+Inf", Float8E5M2Inf(1).String())
	assert.Equal(t, "NaN", Float8E5M2UZNaN().String())
	assert.Equal(t, "0.25", Float8E5M2FromBits(0x34).String())
}
