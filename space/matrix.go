// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a row-major 3x3 matrix used for linear color transforms.
type Matrix [3][3]float64

// Identity is the identity [Matrix].
var Identity = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// MulVec returns m * v.
func (m *Matrix) MulVec(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul returns m * o.
func (m *Matrix) Mul(o *Matrix) Matrix {
	var d mat.Dense
	d.Mul(m.dense(), o.dense())
	return fromDense(&d)
}

// Inverse returns the inverse of m, or an error if m is singular.
func (m *Matrix) Inverse() (Matrix, error) {
	var d mat.Dense
	if err := d.Inverse(m.dense()); err != nil {
		return Matrix{}, fmt.Errorf("inverting color matrix: %w", err)
	}
	return fromDense(&d), nil
}

func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2],
	})
}

func fromDense(d mat.Matrix) Matrix {
	var m Matrix
	for r := range 3 {
		for c := range 3 {
			m[r][c] = d.At(r, c)
		}
	}
	return m
}

// Chromaticity is a CIE 1931 xy chromaticity coordinate.
type Chromaticity struct {
	X, Y float64
}

// XYZ returns the tristimulus values of the chromaticity at Y = 1.
func (c Chromaticity) XYZ() [3]float64 {
	return [3]float64{c.X / c.Y, 1, (1 - c.X - c.Y) / c.Y}
}

// Standard illuminants, with the chromaticities used by CSS Color 4.
var (
	D65 = Chromaticity{0.3127, 0.3290}
	D50 = Chromaticity{0.3457, 0.3585}
)

// valid returns whether c has a finite, positive y.
func (c Chromaticity) valid() bool {
	return c.Y > 0 && !math.IsInf(c.X, 0) && !math.IsNaN(c.X) && !math.IsInf(c.Y, 0)
}

// RGBToXYZMatrix returns the matrix converting linear RGB with
// the given primaries (red, green, blue) and white point to XYZ
// relative to that same white point.
func RGBToXYZMatrix(primaries [3]Chromaticity, white Chromaticity) (Matrix, error) {
	if !white.valid() {
		return Matrix{}, fmt.Errorf("white point %v is not a valid chromaticity", white)
	}
	var p Matrix
	for c, pr := range primaries {
		if !pr.valid() {
			return Matrix{}, fmt.Errorf("primary %v is not a valid chromaticity", pr)
		}
		xyz := pr.XYZ()
		for r := range 3 {
			p[r][c] = xyz[r]
		}
	}
	pinv, err := p.Inverse()
	if err != nil {
		return Matrix{}, fmt.Errorf("primaries %v are degenerate: %w", primaries, err)
	}
	s := pinv.MulVec(white.XYZ())
	var d mat.Dense
	d.Mul(p.dense(), mat.NewDiagDense(3, s[:]))
	return fromDense(&d), nil
}

// bradfordCone is the Bradford cone response matrix.
var bradfordCone = Matrix{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

// Bradford returns the chromatic adaptation matrix mapping XYZ
// relative to the white point from to XYZ relative to to.
func Bradford(from, to Chromaticity) Matrix {
	if from == to {
		return Identity
	}
	src := bradfordCone.MulVec(from.XYZ())
	dst := bradfordCone.MulVec(to.XYZ())
	inv, _ := bradfordCone.Inverse() // constant matrix, never singular
	scale := mat.NewDiagDense(3, []float64{dst[0] / src[0], dst[1] / src[1], dst[2] / src[2]})
	var d mat.Dense
	d.Product(inv.dense(), scale, bradfordCone.dense())
	return fromDense(&d)
}

// Linear returns a bridge transform applying m.
func Linear(m Matrix) func([3]float64) [3]float64 {
	return func(v [3]float64) [3]float64 {
		return m.MulVec(v)
	}
}
