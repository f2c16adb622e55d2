// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors_test

import (
	"fmt"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
)

func ExampleColor_In() {
	c := colors.New(space.LCH, 79.7256, 40.448, 84.771)
	fmt.Println(c.In(space.SRGB).GetCoords(gamut.Clip, 3))
	// Output: [0.926 0.75 0.393 1]
}

func ExampleModel_Mix() {
	red := colors.New(space.HSL, 0, 100, 50)
	lime := colors.New(space.HSL, 120, 100, 50)
	fmt.Println(red.In(space.HSL).Mix(lime, nil).In(space.HSL).GetCoords(gamut.Clip))

	opts := colors.NewMixOptions()
	opts.Hue = colors.Longer
	fmt.Println(red.In(space.HSL).Mix(lime, opts).In(space.HSL).GetCoords(gamut.Clip))
	// Output:
	// [60 100 50 1]
	// [240 100 50 1]
}

func ExampleModel_Set() {
	c := colors.New(space.OKLCH, 0.7, 0.1, 30)
	c, err := c.In(space.OKLCH).Set(map[string]float64{"h": 390, "alpha": 0.5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output: oklch(0.7 0.1 30 / 0.5)
}

func ExampleContrast() {
	black := colors.New(space.SRGB, 0, 0, 0)
	white := colors.New(space.SRGB, 1, 1, 1)
	fmt.Printf("%.1f\n", colors.Contrast(black, white))
	// Output: 21.0
}
