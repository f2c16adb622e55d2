// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
)

// InGamut returns whether the color, read unfitted in space s, lies
// within the gamut of s, allowing the given epsilon on each bounded
// component. Colors are always in the gamut of unbounded spaces.
func (c Color) InGamut(s *space.Space, epsilon float64) bool {
	return gamut.InGamut(s, c.In(s).coords(), epsilon)
}

// ToGamut returns the color with its coordinates in s fitted
// into the gamut of s with the given method.
func (c Color) ToGamut(s *space.Space, method gamut.Methods) Color {
	m := c.In(s)
	v := m.GetCoords(method)
	return m.SetCoords(Val(v[0]), Val(v[1]), Val(v[2]))
}

// DeltaEOK returns the Euclidean distance between the two colors
// in OKLab, scaled by 100. Alpha is ignored.
func DeltaEOK(a, b Color) float64 {
	return gamut.DeltaEOK(a.xyz, b.xyz)
}

// Luminance returns the relative luminance of the color, which is
// its canonical Y clamped to be non-negative.
func (c Color) Luminance() float64 {
	return max(c.xyz[1], 0)
}

// Contrast returns the WCAG 2.1 contrast ratio between the two
// colors, between 1 and 21. Alpha is ignored.
func Contrast(a, b Color) float64 {
	ya, yb := a.Luminance(), b.Luminance()
	return (max(ya, yb) + 0.05) / (min(ya, yb) + 0.05)
}
