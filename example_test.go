// Copyright 2023 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minifloat_test

import (
	"fmt"

	"github.com/nlpodyssey/minifloat"
)

func ExampleFloat16FromFloat32() {
	v := minifloat.Float16FromFloat32(0.1)
	fmt.Printf("%s %#04x\n", v, v.Bits())
	// Output: 0.099975586 0x2e66
}

func ExampleFloat8E4M3_Add() {
	a := minifloat.Float8E4M3FromFloat32(1)
	b := minifloat.Float8E4M3FromFloat32(2)
	fmt.Println(a.Add(b))
	// Output: 3
}

func ExampleFloat8E4M3UZFromFloat32_saturation() {
	v := minifloat.Float8E4M3UZFromFloat32(1e9)
	fmt.Println(v)
	// Output: 240
}

func ExampleFormat() {
	f := minifloat.FormatBFloat16
	fmt.Println(f, f.Size())
	// Output: BF16 2
}
