// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides an immutable [Color] value stored as
// CIE XYZ D65 plus alpha, with a [Model] interface for reading,
// writing and mixing its coordinates in any registered color space.
package colors

import (
	"fmt"

	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
)

// Color is a color stored in the canonical CIE XYZ D65 space, plus
// alpha. It also records the space and unrounded coordinates of the
// write that produced it, so that reading back in that space returns
// exactly what was written. Color is an immutable value: every
// operation that changes it returns a new Color.
type Color struct {
	xyz [3]float64

	// alpha is stored unclamped.
	alpha float64

	// space and coords are the last write; space is nil for
	// colors constructed directly from canonical coordinates.
	space  *space.Space
	coords [3]float64
}

// FromXYZ returns a new color from canonical XYZ D65 coordinates.
func FromXYZ(xyz [3]float64, alpha float64) Color {
	return Color{xyz: xyz, alpha: space.AlphaDomain.Normalize(alpha)}
}

// FromCoords returns a new color from coordinates in the given space.
// Special values are normalized as by [Model.SetCoords].
func FromCoords(s *space.Space, coords [3]float64, alpha float64) Color {
	return Color{alpha: 1}.In(s).SetCoords(Val(coords[0]), Val(coords[1]), Val(coords[2]), Val(alpha))
}

// New returns a new opaque color from coordinates in the given space.
func New(s *space.Space, c0, c1, c2 float64) Color {
	return FromCoords(s, [3]float64{c0, c1, c2}, 1)
}

// XYZ returns the canonical CIE XYZ D65 coordinates of the color.
func (c Color) XYZ() [3]float64 {
	return c.xyz
}

// Alpha returns the alpha of the color, clamped into [0, 1].
func (c Color) Alpha() float64 {
	return space.AlphaDomain.Clip(c.alpha)
}

// Space returns the space of the last write, or [space.XYZD65]
// for colors constructed from canonical coordinates.
func (c Color) Space() *space.Space {
	if c.space == nil {
		return space.XYZD65
	}
	return c.space
}

// String returns the clipped coordinates of the color in the
// space of its last write, such as "srgb(1 0.5 0 / 1)".
func (c Color) String() string {
	s := c.Space()
	v := c.In(s).GetCoords(gamut.Clip)
	return fmt.Sprintf("%s(%g %g %g / %g)", s.Name, v[0], v[1], v[2], v[3])
}
