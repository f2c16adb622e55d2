// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"cogentcore.org/colorspace/base/errors"
)

// The built-in spaces, registered at package initialization.
var (
	XYZD65      *Space
	XYZ         *Space
	XYZD50      *Space
	SRGB        *Space
	DisplayP3   *Space
	Rec2020     *Space
	A98RGB      *Space
	ProPhotoRGB *Space
	RGB         *Space
	HSL         *Space
	HWB         *Space
	Lab         *Space
	LCH         *Space
	OKLab       *Space
	OKLCH       *Space
)

func init() {
	toD65 := Bradford(D50, D65)
	toD50 := Bradford(D65, D50)
	XYZD65 = builtin(newXYZ(XYZD65Name, XYZD65Name, nil, nil))
	XYZ = builtin(newXYZ("xyz", XYZD65Name, identity, identity))
	XYZD50 = builtin(newXYZ("xyz-d50", XYZD65Name, Linear(toD65), Linear(toD50)))

	SRGB = builtinRGB(RGBOptions{
		Name:      "srgb",
		Primaries: [3]Chromaticity{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}},
	})
	DisplayP3 = builtinRGB(RGBOptions{
		Name:      "display-p3",
		Primaries: [3]Chromaticity{{0.68, 0.32}, {0.265, 0.69}, {0.15, 0.06}},
	})
	Rec2020 = builtinRGB(RGBOptions{
		Name:      "rec2020",
		Primaries: [3]Chromaticity{{0.708, 0.292}, {0.17, 0.797}, {0.131, 0.046}},
		Transfer:  TransferRec2020,
	})
	A98RGB = builtinRGB(RGBOptions{
		Name:      "a98-rgb",
		Primaries: [3]Chromaticity{{0.64, 0.33}, {0.21, 0.71}, {0.15, 0.06}},
		Transfer:  TransferA98,
	})
	ProPhotoRGB = builtinRGB(RGBOptions{
		Name:      "prophoto-rgb",
		Primaries: [3]Chromaticity{{0.734699, 0.265301}, {0.159597, 0.840403}, {0.036598, 0.000105}},
		White:     D50,
		Transfer:  TransferProPhoto,
	})
	RGB = builtinRGB(RGBOptions{
		Name:      "rgb",
		Primaries: [3]Chromaticity{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}},
		Scale:     255,
		Precision: -1,
		Gamut:     "srgb",
	})
	HSL = builtin(newCylindrical("hsl", "s", "l", HSLToSRGB, SRGBToHSL))
	HWB = builtin(newCylindrical("hwb", "w", "b", HWBToSRGB, SRGBToHWB))

	Lab = builtin(newLab())
	LCH = builtin(newPolar("lch", "lab", RangeDomain(0, 100), 150))
	OKLab = builtin(newOKLab())
	OKLCH = builtin(newPolar("oklch", "oklab", UnitDomain, 0.4))
}

func builtin(s *Space) *Space {
	errors.Must(Register(s))
	return s
}

func builtinRGB(opts RGBOptions) *Space {
	return builtin(errors.Must1(NewRGB(opts)))
}
