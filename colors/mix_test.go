// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
	"github.com/stretchr/testify/assert"
)

func TestMixHue(t *testing.T) {
	red := New(space.SRGB, 1, 0, 0)
	lime := New(space.SRGB, 0, 1, 0)

	mixed := red.In(space.HSL).Mix(lime, NewMixOptions())
	assert.InDelta(t, 60, mixed.In(space.HSL).GetCoords(gamut.None)[0], 1e-3)

	opts := NewMixOptions()
	opts.Hue = Longer
	mixed = red.In(space.HSL).Mix(lime, opts)
	assert.InDelta(t, 240, mixed.In(space.HSL).GetCoords(gamut.None)[0], 1e-3)

	// written directly in hsl, the hues are exact
	red = New(space.HSL, 0, 100, 50)
	lime = New(space.HSL, 120, 100, 50)
	assert.Equal(t, [4]float64{60, 100, 50, 1}, Mix(space.HSL, red, lime, nil).In(space.HSL).GetCoords(gamut.None))
}

func TestMixBoundaries(t *testing.T) {
	a := FromCoords(space.OKLCH, [3]float64{0.6, 0.1, 40}, 0.8)
	b := FromCoords(space.SRGB, [3]float64{0.1, 0.7, 0.9}, 0.4)

	opts := NewMixOptions()
	opts.Amount = 0
	assert.Equal(t, a, a.In(space.OKLCH).Mix(b, opts))
	opts.Amount = -3
	assert.Equal(t, a, a.In(space.OKLCH).Mix(b, opts))

	opts.Amount = 1
	got := a.In(space.OKLCH).Mix(b, opts)
	assert.Equal(t, b.In(space.OKLCH).GetCoords(gamut.None), got.In(space.OKLCH).GetCoords(gamut.None))
	opts.Amount = 7
	got = a.In(space.OKLCH).Mix(b, opts)
	assert.Equal(t, b.In(space.OKLCH).GetCoords(gamut.None), got.In(space.OKLCH).GetCoords(gamut.None))
}

func TestMixPremultiplied(t *testing.T) {
	red := New(space.SRGB, 1, 0, 0)
	clear := FromCoords(space.SRGB, [3]float64{0, 0, 1}, 0)

	got := red.In(space.SRGB).Mix(clear, nil).In(space.SRGB).GetCoords(gamut.None)
	assert.Equal(t, [4]float64{1, 0, 0, 0.5}, got)

	got = clear.In(space.SRGB).Mix(clear, nil).In(space.SRGB).GetCoords(gamut.None)
	assert.Equal(t, [4]float64{0, 0, 0, 0}, got)

	half := FromCoords(space.SRGB, [3]float64{0, 0, 1}, 0.5)
	got = red.In(space.SRGB).Mix(half, nil).In(space.SRGB).GetCoords(gamut.None)
	assert.InDelta(t, 2.0/3, got[0], 1e-12)
	assert.InDelta(t, 1.0/3, got[2], 1e-12)
	assert.Equal(t, 0.75, got[3])

	// opaque mixes are forced opaque
	got = red.In(space.SRGB).Mix(New(space.SRGB, 0, 0, 1), nil).In(space.SRGB).GetCoords(gamut.None)
	assert.Equal(t, [4]float64{0.5, 0, 0.5, 1}, got)
}

func TestMixPremultipliedHue(t *testing.T) {
	a := FromCoords(space.OKLCH, [3]float64{0.6, 0.2, 350}, 0.5)
	b := FromCoords(space.OKLCH, [3]float64{0.8, 0.1, 30}, 1)
	got := a.In(space.OKLCH).Mix(b, nil).In(space.OKLCH).GetCoords(gamut.None)
	// the hue is blended unpremultiplied
	assert.InDelta(t, 10, got[2], 1e-9)
	assert.InDelta(t, (0.6*0.5+0.8)/2/0.75, got[0], 1e-12)
	assert.InDelta(t, (0.2*0.5+0.1)/2/0.75, got[1], 1e-12)
	assert.Equal(t, 0.75, got[3])
}

func TestMixEasingGamma(t *testing.T) {
	black := New(space.SRGB, 0, 0, 0)
	white := New(space.SRGB, 1, 1, 1)

	opts := NewMixOptions()
	opts.Gamma = 2
	got := black.In(space.SRGB).Mix(white, opts).In(space.SRGB).GetCoords(gamut.None)
	assert.InDelta(t, 0.29289, got[0], 1e-5)

	opts = NewMixOptions()
	opts.Easing = func(t float64) float64 { return t * t }
	got = black.In(space.SRGB).Mix(white, opts).In(space.SRGB).GetCoords(gamut.None)
	assert.InDelta(t, 0.75, got[0], 1e-12)
}

func TestInterpolateHue(t *testing.T) {
	tests := []struct {
		a, b   float64
		method HueInterpolations
		want   float64
	}{
		{350, 10, Shorter, 0},
		{10, 350, Shorter, 0},
		{0, 120, Shorter, 60},
		{0, 120, Longer, 240},
		{350, 10, Longer, 180},
		{30, 30, Longer, 210},
		{30, 30, Shorter, 30},
		{350, 10, Increasing, 0},
		{10, 350, Increasing, 180},
		{10, 350, Decreasing, 0},
		{350, 10, Decreasing, 180},
		{90, 270, Shorter, 0},
	}
	for _, test := range tests {
		got := InterpolateHue(test.a, test.b, 0.5, test.method)
		assert.InDelta(t, test.want, got, 1e-9, "%v %v %v", test.a, test.b, test.method)
		assert.True(t, got >= 0 && got < 360)
	}
	assert.Equal(t, 350.0, InterpolateHue(350, 10, 0, Longer))
}

func TestHueInterpolationsEnum(t *testing.T) {
	var h HueInterpolations
	assert.NoError(t, h.SetString("decreasing"))
	assert.Equal(t, Decreasing, h)
	assert.Error(t, h.SetString("specified"))
	assert.Equal(t, "longer", Longer.String())
	assert.Len(t, HueInterpolationsValues(), int(HueInterpolationsN))
}
