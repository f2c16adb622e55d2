// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"math"
)

// HSLToSRGB converts hue in degrees, saturation and lightness in
// percent to sRGB in [0, 1], using the CSS Color 4 algorithm.
func HSLToSRGB(hsl [3]float64) [3]float64 {
	h := HueDomain.Wrap(hsl[0])
	s, l := hsl[1]/100, hsl[2]/100
	a := s * min(l, 1-l)
	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		return l - a*max(-1, min(k-3, 9-k, 1))
	}
	return [3]float64{f(0), f(8), f(4)}
}

// SRGBToHSL converts sRGB in [0, 1] to hue in degrees, saturation
// and lightness in percent. Achromatic colors get a hue of 0.
func SRGBToHSL(rgb [3]float64) [3]float64 {
	r, g, b := rgb[0], rgb[1], rgb[2]
	mx := max(r, g, b)
	mn := min(r, g, b)
	l := (mx + mn) / 2
	d := mx - mn
	h, s := 0.0, 0.0
	if d != 0 {
		if l != 0 && l != 1 {
			s = (mx - l) / min(l, 1-l)
		}
		switch mx {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h *= 60
	}
	if s < 0 {
		h += 180
		s = -s
	}
	if s*100 <= AchromaticChroma {
		h = 0
	}
	return [3]float64{HueDomain.Wrap(h), s * 100, l * 100}
}

// HWBToSRGB converts hue in degrees, whiteness and blackness in
// percent to sRGB in [0, 1].
func HWBToSRGB(hwb [3]float64) [3]float64 {
	w, bk := hwb[1]/100, hwb[2]/100
	if w+bk >= 1 {
		gray := w / (w + bk)
		return [3]float64{gray, gray, gray}
	}
	rgb := HSLToSRGB([3]float64{hwb[0], 100, 50})
	for i := range rgb {
		rgb[i] = rgb[i]*(1-w-bk) + w
	}
	return rgb
}

// SRGBToHWB converts sRGB in [0, 1] to hue in degrees, whiteness
// and blackness in percent.
func SRGBToHWB(rgb [3]float64) [3]float64 {
	h := SRGBToHSL(rgb)[0]
	w := min(rgb[0], rgb[1], rgb[2])
	bk := 1 - max(rgb[0], rgb[1], rgb[2])
	if w+bk >= 1 {
		h = 0
	}
	return [3]float64{h, w * 100, bk * 100}
}

// newCylindrical returns an hsl-like space bridging to the rgb
// space, whose coordinates are in [0, 255].
func newCylindrical(name, c1, c2 string, to, from func([3]float64) [3]float64) *Space {
	return &Space{
		Name: name,
		Components: [3]Component{
			{Name: "h", Index: 0, Domain: HueDomain},
			{Name: c1, Index: 1, Domain: PercentDomain},
			{Name: c2, Index: 2, Domain: PercentDomain},
		},
		Precision: 2,
		Gamut:     "srgb",
		Bridge:    "rgb",
		ToBridge: func(c [3]float64) [3]float64 {
			rgb := to(c)
			return [3]float64{rgb[0] * 255, rgb[1] * 255, rgb[2] * 255}
		},
		FromBridge: func(c [3]float64) [3]float64 {
			return from([3]float64{c[0] / 255, c[1] / 255, c[2] / 255})
		},
	}
}
