// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
	"github.com/stretchr/testify/assert"
)

func TestRGBA(t *testing.T) {
	c := New(space.SRGB, 1, 0.5, 0)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c.AsRGBA())
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{65535, 32768, 0, 65535}, []uint32{r, g, b, a})

	// out of gamut colors are clipped
	p3 := New(space.DisplayP3, 1, 0, 0)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, p3.AsRGBA())

	half := FromCoords(space.SRGB, [3]float64{1, 1, 1}, 0.5)
	assert.Equal(t, color.RGBA{128, 128, 128, 128}, half.AsRGBA())
}

func TestFromColor(t *testing.T) {
	for _, rgba := range []color.RGBA{
		{255, 0, 0, 255}, {10, 20, 30, 255}, {100, 50, 0, 128}, {0, 0, 0, 0}, {255, 255, 255, 255},
	} {
		assert.Equal(t, rgba, FromColor(rgba).AsRGBA())
	}
	c := FromColor(color.RGBA{255, 0, 0, 255})
	assert.Equal(t, [4]float64{1, 0, 0, 1}, c.In(space.SRGB).GetCoords(gamut.None))
	assert.Equal(t, 0.0, FromColor(nil).Alpha())
	assert.Equal(t, c, FromColor(c))

	gray := FromColor(color.Gray{Y: 51})
	assert.Equal(t, [4]float64{0.2, 0.2, 0.2, 1}, gray.In(space.SRGB).GetCoords(gamut.Clip))
}

func TestImageModel(t *testing.T) {
	c := ImageModel.Convert(color.White)
	assert.IsType(t, Color{}, c)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.(Color).AsRGBA())

	img := Uniform(New(space.OKLCH, 0.7, 0.1, 200))
	assert.Equal(t, New(space.OKLCH, 0.7, 0.1, 200), ToUniform(img))
	assert.Equal(t, 0.0, ToUniform(nil).Alpha())

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.Set(0, 0, New(space.SRGB, 0, 0, 1))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, ToUniform(rgba).AsRGBA())
}
