// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"math"
)

// CIE Lab constants, as exact rationals.
const (
	labKappa   = 24389.0 / 27
	labEpsilon = 216.0 / 24389
)

// AchromaticChroma is the chroma at or below which a polar
// space reports a hue of 0.
const AchromaticChroma = 1e-8

// XYZToLab converts XYZ, relative to the given white point, to CIE Lab.
func XYZToLab(xyz [3]float64, white Chromaticity) [3]float64 {
	w := white.XYZ()
	f := func(t float64) float64 {
		if t > labEpsilon {
			return math.Cbrt(t)
		}
		return (labKappa*t + 16) / 116
	}
	fx := f(xyz[0] / w[0])
	fy := f(xyz[1] / w[1])
	fz := f(xyz[2] / w[2])
	return [3]float64{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

// LabToXYZ converts CIE Lab to XYZ relative to the given white point.
func LabToXYZ(lab [3]float64, white Chromaticity) [3]float64 {
	w := white.XYZ()
	fy := (lab[0] + 16) / 116
	fx := lab[1]/500 + fy
	fz := fy - lab[2]/200
	inv := func(f float64) float64 {
		if f3 := f * f * f; f3 > labEpsilon {
			return f3
		}
		return (116*f - 16) / labKappa
	}
	yr := lab[0] / labKappa
	if lab[0] > labKappa*labEpsilon {
		yr = fy * fy * fy
	}
	return [3]float64{inv(fx) * w[0], yr * w[1], inv(fz) * w[2]}
}

// ToPolar converts rectangular (l, a, b) coordinates to (l, c, h),
// with h in degrees in [0, 360). Achromatic colors get a hue of 0.
func ToPolar(c [3]float64) [3]float64 {
	chroma := math.Hypot(c[1], c[2])
	if chroma <= AchromaticChroma {
		return [3]float64{c[0], chroma, 0}
	}
	return [3]float64{c[0], chroma, HueDomain.Wrap(math.Atan2(c[2], c[1]) * 180 / math.Pi)}
}

// FromPolar converts polar (l, c, h) coordinates to (l, a, b).
func FromPolar(c [3]float64) [3]float64 {
	h := c[2] * math.Pi / 180
	return [3]float64{c[0], c[1] * math.Cos(h), c[1] * math.Sin(h)}
}

// newXYZ returns an XYZ space with the given bridge transforms.
func newXYZ(name, bridge string, to, from func([3]float64) [3]float64) *Space {
	return &Space{
		Name: name,
		Components: [3]Component{
			{Name: "x", Index: 0, Domain: UnitDomain},
			{Name: "y", Index: 1, Domain: UnitDomain},
			{Name: "z", Index: 2, Domain: UnitDomain},
		},
		Precision:  5,
		Bridge:     bridge,
		ToBridge:   to,
		FromBridge: from,
	}
}

func identity(c [3]float64) [3]float64 { return c }

// newLab returns the lab space. Lab is relative to D50, but its
// tristimulus values reach the canonical space unadapted, matching
// CSS engines: the step to xyz-d50 pre-applies the D65 to D50
// transform that the xyz-d50 hop reverses.
func newLab() *Space {
	toD50 := Bradford(D65, D50)
	toD65 := Bradford(D50, D65)
	ab := RangeDomain(-125, 125)
	return &Space{
		Name: "lab",
		Components: [3]Component{
			{Name: "l", Index: 0, Domain: RangeDomain(0, 100)},
			{Name: "a", Index: 1, Domain: ab},
			{Name: "b", Index: 2, Domain: ab},
		},
		Precision: 5,
		Bridge:    "xyz-d50",
		ToBridge: func(c [3]float64) [3]float64 {
			return toD50.MulVec(LabToXYZ(c, D50))
		},
		FromBridge: func(xyz [3]float64) [3]float64 {
			return XYZToLab(toD65.MulVec(xyz), D50)
		},
	}
}

// newPolar returns the polar (l, c, h) form of a rectangular
// lightness-opponent space.
func newPolar(name, bridge string, l Domain, cmax float64) *Space {
	return &Space{
		Name: name,
		Components: [3]Component{
			{Name: "l", Index: 0, Domain: l},
			{Name: "c", Index: 1, Domain: RangeDomain(0, cmax)},
			{Name: "h", Index: 2, Domain: HueDomain},
		},
		Precision:  5,
		Bridge:     bridge,
		ToBridge:   FromPolar,
		FromBridge: ToPolar,
	}
}
