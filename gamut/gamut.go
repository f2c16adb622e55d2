// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gamut fits color coordinates into the gamut of their space,
// by clipping or by searching in OKLCH for the closest in-gamut color.
package gamut

import (
	"fmt"
	"math"

	"cogentcore.org/colorspace/space"
	"gonum.org/v1/gonum/floats"
)

// Methods are the methods that [Fit] can use.
type Methods int32 //enums:enum

const (
	// None returns the coordinates unchanged.
	None Methods = iota

	// RoundOnly rounds the coordinates to the precision of the space.
	RoundOnly

	// Clip wraps hue components into [0, 360), clamps all other
	// components into their domain, and rounds.
	Clip

	// ChromaReduction lowers the OKLCH chroma of the color at a
	// lightness in the displayable range of its hue, accepting the
	// first clipped candidate within [ReductionThreshold].
	ChromaReduction

	// CSSGamutMap is the CSS Color 4 gamut mapping algorithm,
	// a chroma search that stops within [JND] of the gamut.
	CSSGamutMap
)

// Tunables of the gamut searches.
const (
	// ReductionThreshold is the [DeltaEOK] distance (on the ×100 scale)
	// below which chroma reduction accepts a clipped candidate.
	ReductionThreshold = 2.0

	// JND is the just noticeable OKLab distance (unscaled) used by
	// [CSSGamutMap].
	JND = 0.02

	// Epsilon is the tolerance of the initial in-gamut checks.
	Epsilon = 1e-5

	// ReferenceChroma is the OKLCH chroma at which chroma reduction
	// finds the displayable lightness range of a hue.
	ReferenceChroma = 0.05

	// LightnessTolerance ends the lightness range searches.
	LightnessTolerance = 1e-5

	// ChromaTolerance ends the chroma reduction search.
	ChromaTolerance = 1e-6

	// MapTolerance ends the [CSSGamutMap] search.
	MapTolerance = 1e-4

	// MapEpsilon is how close to [JND] a clipped candidate must be
	// for [CSSGamutMap] to accept it early.
	MapEpsilon = 1e-4
)

// Fit returns the given coordinates of space s fitted with the given
// method, rounded to the precision of s or to the given precision
// if it is non-negative. Unbounded spaces are only rounded by the
// search methods. Fit panics on an invalid method.
func Fit(c [3]float64, s *space.Space, method Methods, precision ...int) [3]float64 {
	prec := s.Precision
	if len(precision) > 0 && precision[0] >= 0 {
		prec = precision[0]
	}
	switch method {
	case None:
		return c
	case RoundOnly:
		return round(c, prec)
	case Clip:
		return wrapHue(s, round(clip(s, c), prec))
	case ChromaReduction:
		return wrapHue(s, round(chromaReduction(s, c), prec))
	case CSSGamutMap:
		return wrapHue(s, round(cssGamutMap(s, c), prec))
	}
	panic(fmt.Sprintf("gamut.Fit: invalid method %d", method))
}

// round rounds each coordinate to the given number of decimal digits.
func round(c [3]float64, prec int) [3]float64 {
	p := math.Pow10(prec)
	for i, v := range c {
		c[i] = math.Round(v*p) / p
	}
	return c
}

// wrapHue wraps a hue that rounding pushed up to 360 back to 0.
func wrapHue(s *space.Space, c [3]float64) [3]float64 {
	if h := s.HueIndex(); h >= 0 {
		c[h] = space.HueDomain.Wrap(c[h])
	}
	return c
}

// clip clips each coordinate into the domain of its component.
func clip(s *space.Space, c [3]float64) [3]float64 {
	for i, comp := range s.Components {
		c[i] = comp.Domain.Clip(c[i])
	}
	return c
}

// InGamut returns whether the given coordinates of space s lie
// within the gamut of s, allowing the given epsilon on each bounded
// component of the gamut space. Unbounded spaces are always in gamut.
func InGamut(s *space.Space, c [3]float64, epsilon float64) bool {
	g := s.GamutSpace()
	if g == nil {
		return true
	}
	if g != s {
		c = space.Convert(s, g, c)
	}
	return inDomains(g, c, epsilon)
}

func inDomains(g *space.Space, c [3]float64, epsilon float64) bool {
	for i, comp := range g.Components {
		if comp.Domain.IsHue() {
			continue
		}
		if !comp.Domain.Contains(c[i], epsilon) {
			return false
		}
	}
	return true
}

// inGamutXYZ returns whether the canonical coordinates are in gamut g.
func inGamutXYZ(g *space.Space, xyz [3]float64, epsilon float64) bool {
	return inDomains(g, space.FromCanonical(g, xyz), epsilon)
}

// clipXYZ returns the canonical coordinates clipped in gamut g.
func clipXYZ(g *space.Space, xyz [3]float64) [3]float64 {
	return space.ToCanonical(g, clip(g, space.FromCanonical(g, xyz)))
}

// DeltaEOK returns the Euclidean distance between the two canonical
// XYZ colors in OKLab, scaled by 100.
func DeltaEOK(xyzA, xyzB [3]float64) float64 {
	a := space.XYZToOKLab(xyzA)
	b := space.XYZToOKLab(xyzB)
	return floats.Distance(a[:], b[:], 2) * 100
}

// oklch returns the canonical coordinates of the given OKLCH color.
func oklch(l, c, h float64) [3]float64 {
	return space.ToCanonical(space.OKLCH, [3]float64{l, c, h})
}
