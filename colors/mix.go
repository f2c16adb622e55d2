// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colorspace/space"
)

// HueInterpolations are the ways of interpolating between two hues.
type HueInterpolations int32 //enums:enum

const (
	// Shorter takes the shorter arc between the hues.
	Shorter HueInterpolations = iota

	// Longer takes the longer arc between the hues;
	// equal hues go a full turn.
	Longer

	// Increasing moves in the direction of increasing hue.
	Increasing

	// Decreasing moves in the direction of decreasing hue.
	Decreasing
)

// MixOptions are the options for [Model.Mix].
type MixOptions struct {

	// Amount is the fraction of the other color in the mix, in [0, 1].
	Amount float64

	// Hue is how hue components are interpolated.
	Hue HueInterpolations

	// Easing maps the progress before gamma correction; nil is identity.
	Easing func(t float64) float64

	// Gamma is the gamma correction exponent applied after easing.
	Gamma float64
}

// NewMixOptions returns the default [MixOptions]: an even
// mix along the shorter hue arc with no easing or gamma.
func NewMixOptions() *MixOptions {
	return &MixOptions{Amount: 0.5, Hue: Shorter, Gamma: 1}
}

// Mix returns a new color mixing the color with other in the model
// space, using the given options, or [NewMixOptions] if nil. Both
// colors are read unfitted. Colors that are not opaque are mixed
// with premultiplied alpha.
func (m Model) Mix(other Color, opts *MixOptions) Color {
	if opts == nil {
		opts = NewMixOptions()
	}
	amount := min(max(opts.Amount, 0), 1)
	if math.IsNaN(opts.Amount) {
		amount = 0.5
	}
	om := other.In(m.space)
	switch amount {
	case 0:
		return m.color
	case 1:
		c := om.coords()
		return m.SetCoords(Val(c[0]), Val(c[1]), Val(c[2]), Val(other.alpha))
	}

	t := 1 - amount
	if opts.Easing != nil {
		t = opts.Easing(t)
	}
	if opts.Gamma > 0 && opts.Gamma != 1 {
		t = math.Pow(t, 1/opts.Gamma)
	}
	u := 1 - t

	a, b := m.coords(), om.coords()
	aa, ba := m.color.Alpha(), other.Alpha()
	hue := m.space.HueIndex()
	var res [3]float64
	alpha := 1.0
	premultiply := aa < 1 || ba < 1
	if premultiply {
		alpha = lerp(aa, ba, u)
	}
	for i := range res {
		switch {
		case i == hue:
			res[i] = InterpolateHue(a[i], b[i], u, opts.Hue)
		case premultiply:
			if alpha == 0 {
				res[i] = 0
				continue
			}
			res[i] = lerp(a[i]*aa, b[i]*ba, u) / alpha
		default:
			res[i] = lerp(a[i], b[i], u)
		}
	}
	return m.SetCoords(Val(res[0]), Val(res[1]), Val(res[2]), Val(alpha))
}

// Mix mixes a with b in the given space with the given options.
// See [Model.Mix].
func Mix(s *space.Space, a, b Color, opts *MixOptions) Color {
	return a.In(s).Mix(b, opts)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InterpolateHue interpolates between hues a and b, in degrees,
// by t in [0, 1], returning a hue in [0, 360).
func InterpolateHue(a, b, t float64, method HueInterpolations) float64 {
	var delta float64
	switch method {
	case Longer:
		delta = b - a
		switch {
		case delta > 0 && delta < 180:
			delta -= 360
		case delta > -180 && delta <= 0:
			delta += 360
		}
	case Increasing:
		if b < a {
			b += 360
		}
		delta = b - a
	case Decreasing:
		if b > a {
			b -= 360
		}
		delta = b - a
	default:
		delta = math.Mod(b-a+180, 360)
		if delta < 0 {
			delta += 360
		}
		delta -= 180
	}
	return space.HueDomain.Wrap(a + t*delta)
}
