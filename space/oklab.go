// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"math"

	"cogentcore.org/colorspace/base/errors"
)

// OKLab matrices: XYZ D65 to LMS, and non-linear LMS to OKLab.
var (
	oklabXYZToLMS = Matrix{
		{0.8190224379967030, 0.3619062600528904, -0.1288737815209879},
		{0.0329836539323885, 0.9292868615863434, 0.0361446663506424},
		{0.0481771893596242, 0.2642395317527308, 0.6335478284694309},
	}
	oklabLMSToLab = Matrix{
		{0.2104542683093140, 0.7936177747023054, -0.0040720430116193},
		{1.9779985324311684, -2.4285922420485799, 0.4505937096174110},
		{0.0259040424655478, 0.7827717124575296, -0.8086757549230774},
	}
	oklabLMSToXYZ = errors.Must1(oklabXYZToLMS.Inverse())
	oklabLabToLMS = errors.Must1(oklabLMSToLab.Inverse())
)

// XYZToOKLab converts XYZ D65 to OKLab.
func XYZToOKLab(xyz [3]float64) [3]float64 {
	lms := oklabXYZToLMS.MulVec(xyz)
	return oklabLMSToLab.MulVec([3]float64{math.Cbrt(lms[0]), math.Cbrt(lms[1]), math.Cbrt(lms[2])})
}

// OKLabToXYZ converts OKLab to XYZ D65.
func OKLabToXYZ(lab [3]float64) [3]float64 {
	lms := oklabLabToLMS.MulVec(lab)
	return oklabLMSToXYZ.MulVec([3]float64{lms[0] * lms[0] * lms[0], lms[1] * lms[1] * lms[1], lms[2] * lms[2] * lms[2]})
}

func newOKLab() *Space {
	ab := RangeDomain(-0.4, 0.4)
	return &Space{
		Name: "oklab",
		Components: [3]Component{
			{Name: "l", Index: 0, Domain: UnitDomain},
			{Name: "a", Index: 1, Domain: ab},
			{Name: "b", Index: 2, Domain: ab},
		},
		Precision:  5,
		Bridge:     XYZD65Name,
		ToBridge:   OKLabToXYZ,
		FromBridge: XYZToOKLab,
	}
}
