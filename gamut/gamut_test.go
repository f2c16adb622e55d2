// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamut

import (
	"testing"

	"cogentcore.org/colorspace/base/tolassert"
	"cogentcore.org/colorspace/space"
	"github.com/stretchr/testify/assert"
)

func assertCoords(t *testing.T, expected, actual [3]float64, tolerance float64, msgAndArgs ...any) {
	t.Helper()
	tolassert.EqualTolSlice(t, expected[:], actual[:], tolerance, msgAndArgs...)
}

func TestNoneAndRound(t *testing.T) {
	c := [3]float64{1.23456789, -0.3, 0.5}
	assert.Equal(t, c, Fit(c, space.SRGB, None))
	assert.Equal(t, [3]float64{1.23457, -0.3, 0.5}, Fit(c, space.SRGB, RoundOnly))
	assert.Equal(t, [3]float64{1.23, -0.3, 0.5}, Fit(c, space.SRGB, RoundOnly, 2))
	assert.Equal(t, [3]float64{1.23457, -0.3, 0.5}, Fit(c, space.SRGB, RoundOnly, -1))
	assert.Equal(t, [3]float64{128, 0, 3}, Fit([3]float64{127.6, 0.2, 3.4}, space.RGB, RoundOnly))
}

func TestClip(t *testing.T) {
	assert.Equal(t, [3]float64{1, 0, 0.5}, Fit([3]float64{1.2, -0.3, 0.5}, space.SRGB, Clip))
	assert.Equal(t, [3]float64{255, 0, 100}, Fit([3]float64{300, -2, 99.7}, space.RGB, Clip))
	assert.Equal(t, [3]float64{100, 125, -125}, Fit([3]float64{120, 130, -200}, space.Lab, Clip))

	// hues wrap instead of clamping
	assert.Equal(t, [3]float64{0.5, 0.1, 10}, Fit([3]float64{0.5, 0.1, 370}, space.OKLCH, Clip))
	assert.Equal(t, [3]float64{350, 50, 50}, Fit([3]float64{-10, 50, 50}, space.HSL, Clip))
	assert.Equal(t, [3]float64{50, 10, 0}, Fit([3]float64{50, 10, 359.9999999}, space.LCH, Clip))
}

func TestClipIdempotent(t *testing.T) {
	inputs := [][3]float64{
		{1.2, -0.3, 0.5}, {0.123456789, 0.5, 0.999999999}, {-5, 5, 0.25},
	}
	for _, s := range []*space.Space{space.SRGB, space.HSL, space.OKLCH, space.Lab, space.RGB} {
		for _, c := range inputs {
			once := Fit(c, s, Clip)
			assert.Equal(t, once, Fit(once, s, Clip), "%s %v", s.Name, c)
		}
	}
}

func TestInvalidMethod(t *testing.T) {
	assert.Panics(t, func() { Fit([3]float64{}, space.SRGB, Methods(99)) })
	assert.Panics(t, func() { Fit([3]float64{}, space.SRGB, MethodsN) })
}

func TestInGamut(t *testing.T) {
	p3red := [3]float64{1, 0, 0}
	assert.True(t, InGamut(space.DisplayP3, p3red, 0))
	assert.False(t, InGamut(space.SRGB, space.Convert(space.DisplayP3, space.SRGB, p3red), Epsilon))
	assert.True(t, InGamut(space.XYZ, space.Convert(space.DisplayP3, space.XYZ, p3red), 0))
	assert.True(t, InGamut(space.Lab, [3]float64{50, 500, -500}, 0))

	assert.True(t, InGamut(space.SRGB, [3]float64{1.000001, 0, 0}, Epsilon))
	assert.False(t, InGamut(space.SRGB, [3]float64{1.000001, 0, 0}, 0))
	assert.True(t, InGamut(space.HSL, [3]float64{0, 100, 50}, Epsilon))
	assert.False(t, InGamut(space.HSL, [3]float64{0, 120, 50}, Epsilon))
	assert.True(t, InGamut(space.RGB, [3]float64{255, 0, 128}, Epsilon))
}

func TestDeltaEOK(t *testing.T) {
	white := space.ToCanonical(space.SRGB, [3]float64{1, 1, 1})
	black := [3]float64{}
	assert.Equal(t, 0.0, DeltaEOK(white, white))
	assert.InDelta(t, 100, DeltaEOK(white, black), 1e-3)
	assert.Equal(t, DeltaEOK(white, black), DeltaEOK(black, white))
}

func TestMethodsEnum(t *testing.T) {
	assert.Equal(t, "css-gamut-map", CSSGamutMap.String())
	assert.Equal(t, "round-only", RoundOnly.String())
	var m Methods
	assert.NoError(t, m.SetString("chroma-reduction"))
	assert.Equal(t, ChromaReduction, m)
	assert.Error(t, m.SetString("perceptual"))
	assert.Equal(t, ChromaReduction, m)
	assert.NoError(t, m.UnmarshalText([]byte("clip")))
	assert.Equal(t, Clip, m)
	b, err := None.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "none", string(b))
	assert.Len(t, m.Values(), 5)
	assert.False(t, Methods(7).IsValid())
}
