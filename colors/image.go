// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"

	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
	"github.com/chewxy/math32"
)

// srgb returns the clipped sRGB components and alpha of the color
// as float32, which is ample for 16 bit quantization.
func (c Color) srgb() (r, g, b, a float32) {
	v := c.In(space.SRGB).GetCoords(gamut.Clip)
	return float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])
}

func quantize(v, a, scale float32) float32 {
	return math32.Round(v * a * scale)
}

// RGBA implements the [color.Color] interface, clipping the color
// into sRGB and premultiplying the components by alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	fr, fg, fb, fa := c.srgb()
	r = uint32(quantize(fr, fa, 65535))
	g = uint32(quantize(fg, fa, 65535))
	b = uint32(quantize(fb, fa, 65535))
	a = uint32(quantize(1, fa, 65535))
	return
}

// AsRGBA returns the color as an alpha-premultiplied [color.RGBA].
func (c Color) AsRGBA() color.RGBA {
	fr, fg, fb, fa := c.srgb()
	return color.RGBA{uint8(quantize(fr, fa, 255)), uint8(quantize(fg, fa, 255)), uint8(quantize(fb, fa, 255)), uint8(quantize(1, fa, 255))}
}

// FromColor returns a new color from a standard [color.Color],
// written in sRGB. A nil color is transparent black.
func FromColor(cc color.Color) Color {
	if c, ok := cc.(Color); ok {
		return c
	}
	if cc == nil {
		return FromCoords(space.SRGB, [3]float64{}, 0)
	}
	r, g, b, a := cc.RGBA()
	if a == 0 {
		return FromCoords(space.SRGB, [3]float64{}, 0)
	}
	fa := float32(a)
	un := func(v uint32) float64 {
		return float64(math32.Min(float32(v)/fa, 1))
	}
	return FromCoords(space.SRGB, [3]float64{un(r), un(g), un(b)}, float64(fa/65535))
}

// ImageModel is the standard [color.Model] that converts colors to [Color].
var ImageModel = color.ModelFunc(imageModel)

func imageModel(c color.Color) color.Color {
	return FromColor(c)
}

// Uniform returns a new [image.Uniform] filled completely with the given color.
// See [ToUniform] for the converse.
func Uniform(c color.Color) image.Image {
	return image.NewUniform(c)
}

// ToUniform returns the color at the origin of the given image,
// which is the color of a uniform image. It is transparent black
// for a nil image.
func ToUniform(img image.Image) Color {
	if img == nil {
		return FromColor(nil)
	}
	return FromColor(img.At(0, 0))
}
