// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"fmt"
	"math"
)

// Transfer is a transfer function pair relating encoded RGB
// values to linear light. Both directions preserve the sign
// of their input, so out of gamut values round trip.
type Transfer struct {

	// Name is the name used to refer to the transfer in configuration.
	Name string

	// ToLinear decodes an encoded value to linear light.
	ToLinear func(v float64) float64

	// FromLinear encodes a linear light value.
	FromLinear func(v float64) float64
}

// signed applies f to the magnitude of v and restores its sign.
func signed(v float64, f func(float64) float64) float64 {
	if v < 0 {
		return -f(-v)
	}
	return f(v)
}

var (
	// TransferLinear is the identity transfer.
	TransferLinear = Transfer{
		Name:       "linear",
		ToLinear:   func(v float64) float64 { return v },
		FromLinear: func(v float64) float64 { return v },
	}

	// TransferSRGB is the piecewise sRGB transfer, also used by display-p3.
	TransferSRGB = Transfer{
		Name: "srgb",
		ToLinear: func(v float64) float64 {
			return signed(v, func(a float64) float64 {
				if a <= 0.04045 {
					return a / 12.92
				}
				return math.Pow((a+0.055)/1.055, 2.4)
			})
		},
		FromLinear: func(v float64) float64 {
			return signed(v, func(a float64) float64 {
				if a <= 0.0031308 {
					return a * 12.92
				}
				return 1.055*math.Pow(a, 1/2.4) - 0.055
			})
		},
	}

	// TransferA98 is the pure 563/256 power of a98-rgb.
	TransferA98 = TransferGamma(563.0 / 256.0)

	// TransferRec2020 is the ITU-R BT.2020 transfer.
	TransferRec2020 = Transfer{
		Name: "rec2020",
		ToLinear: func(v float64) float64 {
			return signed(v, func(a float64) float64 {
				if a < rec2020Beta*4.5 {
					return a / 4.5
				}
				return math.Pow((a+rec2020Alpha-1)/rec2020Alpha, 1/0.45)
			})
		},
		FromLinear: func(v float64) float64 {
			return signed(v, func(a float64) float64 {
				if a < rec2020Beta {
					return a * 4.5
				}
				return rec2020Alpha*math.Pow(a, 0.45) - (rec2020Alpha - 1)
			})
		},
	}

	// TransferProPhoto is the ROMM RGB transfer of prophoto-rgb.
	TransferProPhoto = Transfer{
		Name: "prophoto",
		ToLinear: func(v float64) float64 {
			return signed(v, func(a float64) float64 {
				if a <= 16.0/512 {
					return a / 16
				}
				return math.Pow(a, 1.8)
			})
		},
		FromLinear: func(v float64) float64 {
			return signed(v, func(a float64) float64 {
				if a >= 1.0/512 {
					return math.Pow(a, 1/1.8)
				}
				return 16 * a
			})
		},
	}
)

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

// TransferGamma returns a pure power law transfer with the given gamma.
func TransferGamma(gamma float64) Transfer {
	return Transfer{
		Name: "gamma",
		ToLinear: func(v float64) float64 {
			return signed(v, func(a float64) float64 { return math.Pow(a, gamma) })
		},
		FromLinear: func(v float64) float64 {
			return signed(v, func(a float64) float64 { return math.Pow(a, 1/gamma) })
		},
	}
}

// TransferByName returns the named transfer function. The "gamma"
// transfer uses the given gamma, which must be positive.
func TransferByName(name string, gamma float64) (Transfer, error) {
	switch name {
	case "", "srgb":
		return TransferSRGB, nil
	case "linear":
		return TransferLinear, nil
	case "a98":
		return TransferA98, nil
	case "rec2020":
		return TransferRec2020, nil
	case "prophoto":
		return TransferProPhoto, nil
	case "gamma":
		if gamma <= 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
			return Transfer{}, fmt.Errorf("gamma transfer needs a positive finite gamma, got %g", gamma)
		}
		return TransferGamma(gamma), nil
	}
	return Transfer{}, fmt.Errorf("unknown transfer function %q", name)
}

// RGBOptions are the options for creating an RGB-like [Space]
// with [NewRGB].
type RGBOptions struct {

	// Name is the name of the space.
	Name string

	// Primaries are the chromaticities of the red, green and blue primaries.
	Primaries [3]Chromaticity

	// White is the white point of the space; it is [D65] if unset.
	// Other white points are Bradford adapted to D65.
	White Chromaticity

	// Transfer is the transfer function; it is [TransferSRGB] if unset.
	Transfer Transfer

	// Scale is the encoded value of full intensity; it is 1 if unset.
	Scale float64

	// Precision is the rounding precision; it is 5 if unset.
	// Use a negative value for zero digits.
	Precision int

	// Gamut is the name of the gamut space; it is the space itself if unset.
	Gamut string
}

// NewRGB returns a new RGB-like space from the given options,
// bridging straight to [XYZD65Name]. The returned space still
// needs to be registered with [Register].
func NewRGB(opts RGBOptions) (*Space, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("rgb space needs a name")
	}
	if opts.White == (Chromaticity{}) {
		opts.White = D65
	}
	if opts.Transfer.ToLinear == nil || opts.Transfer.FromLinear == nil {
		opts.Transfer = TransferSRGB
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.Scale < 0 || math.IsNaN(opts.Scale) || math.IsInf(opts.Scale, 0) {
		return nil, fmt.Errorf("rgb space %q: invalid scale %g", opts.Name, opts.Scale)
	}
	switch {
	case opts.Precision == 0:
		opts.Precision = 5
	case opts.Precision < 0:
		opts.Precision = 0
	}
	if opts.Gamut == "" {
		opts.Gamut = opts.Name
	}
	toXYZ, err := RGBToXYZMatrix(opts.Primaries, opts.White)
	if err != nil {
		return nil, fmt.Errorf("rgb space %q: %w", opts.Name, err)
	}
	if opts.White != D65 {
		adapt := Bradford(opts.White, D65)
		toXYZ = adapt.Mul(&toXYZ)
	}
	fromXYZ, err := toXYZ.Inverse()
	if err != nil {
		return nil, fmt.Errorf("rgb space %q: %w", opts.Name, err)
	}
	tr, scale := opts.Transfer, opts.Scale
	d := RangeDomain(0, scale)
	return &Space{
		Name: opts.Name,
		Components: [3]Component{
			{Name: "r", Index: 0, Domain: d},
			{Name: "g", Index: 1, Domain: d},
			{Name: "b", Index: 2, Domain: d},
		},
		Precision: opts.Precision,
		Gamut:     opts.Gamut,
		Bridge:    XYZD65Name,
		ToBridge: func(c [3]float64) [3]float64 {
			return toXYZ.MulVec([3]float64{
				tr.ToLinear(c[0] / scale),
				tr.ToLinear(c[1] / scale),
				tr.ToLinear(c[2] / scale),
			})
		},
		FromBridge: func(xyz [3]float64) [3]float64 {
			l := fromXYZ.MulVec(xyz)
			return [3]float64{
				tr.FromLinear(l[0]) * scale,
				tr.FromLinear(l[1]) * scale,
				tr.FromLinear(l[2]) * scale,
			}
		},
	}, nil
}
