// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gamut

import (
	"log/slog"

	"cogentcore.org/colorspace/space"
)

// chromaReduction fits c by lowering its OKLCH chroma. The result is
// not rounded.
func chromaReduction(s *space.Space, c [3]float64) [3]float64 {
	g := s.GamutSpace()
	if g == nil {
		return c
	}
	xyz := space.ToCanonical(s, c)
	if inGamutXYZ(g, xyz, Epsilon) {
		return c
	}
	lch := space.FromCanonical(space.OKLCH, xyz)
	h := lch[2]
	lmin, lmax := lightnessRange(g, h)
	l := min(max(lch[0], lmin), lmax)

	lo, hi := 0.0, 1.0
	for hi-lo > ChromaTolerance {
		mid := (lo + hi) / 2
		cand := oklch(l, mid, h)
		if inGamutXYZ(g, cand, 0) {
			lo = mid
			continue
		}
		clipped := clipXYZ(g, cand)
		if DeltaEOK(cand, clipped) < ReductionThreshold {
			return space.FromCanonical(s, clipped)
		}
		hi = mid
	}
	return space.FromCanonical(s, oklch(l, lo, h))
}

// lightnessRange returns the OKLCH lightness range over which the
// [ReferenceChroma] at hue h is in gamut g. Both searches start from
// mid gray, which every RGB gamut contains at that chroma.
func lightnessRange(g *space.Space, h float64) (lmin, lmax float64) {
	in := func(l float64) bool {
		return inGamutXYZ(g, oklch(l, ReferenceChroma, h), 0)
	}
	if !in(0.5) {
		slog.Debug("gamut: reference chroma is out of gamut at mid lightness", "gamut", g.Name, "hue", h)
		return 0, 1
	}
	lo, hi := 0.0, 1.0
	for hi-lo > LightnessTolerance {
		mid := (lo + hi) / 2
		if in(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}
	lmin = hi

	lo, hi = 0.0, 1.0
	for hi-lo > LightnessTolerance {
		mid := (lo + hi) / 2
		if in(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	lmax = lo
	return
}

// cssGamutMap fits c with the CSS Color 4 gamut mapping algorithm.
// The result is not rounded.
func cssGamutMap(s *space.Space, c [3]float64) [3]float64 {
	g := s.GamutSpace()
	if g == nil {
		return c
	}
	xyz := space.ToCanonical(s, c)
	lch := space.FromCanonical(space.OKLCH, xyz)
	switch {
	case lch[0] >= 1:
		return space.FromCanonical(s, space.OKLabToXYZ([3]float64{1, 0, 0}))
	case lch[0] <= 0:
		return space.FromCanonical(s, space.OKLabToXYZ([3]float64{0, 0, 0}))
	}
	if inGamutXYZ(g, xyz, Epsilon) {
		return c
	}
	l, h := lch[0], lch[2]
	clipped := clipXYZ(g, xyz)
	if DeltaEOK(xyz, clipped)/100 < JND {
		return space.FromCanonical(s, clipped)
	}
	lo, hi := 0.0, lch[1]
	minInGamut := true
	for hi-lo > MapTolerance {
		chroma := (lo + hi) / 2
		cur := oklch(l, chroma, h)
		if minInGamut && inGamutXYZ(g, cur, 0) {
			lo = chroma
			continue
		}
		clipped = clipXYZ(g, cur)
		e := DeltaEOK(cur, clipped) / 100
		if e < JND {
			if JND-e < MapEpsilon {
				return space.FromCanonical(s, clipped)
			}
			minInGamut = false
			lo = chroma
		} else {
			hi = chroma
		}
	}
	return space.FromCanonical(s, clipped)
}
