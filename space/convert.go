// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import "fmt"

func mustBeRegistered(s *Space) {
	if s == nil {
		panic("space: nil color space")
	}
	if !s.registered {
		panic(fmt.Sprintf("space: color space %q is not registered", s.Name))
	}
}

// ToCanonical converts the given coordinates of space s to
// CIE XYZ relative to D65. It panics if s is not registered.
func ToCanonical(s *Space, c [3]float64) [3]float64 {
	mustBeRegistered(s)
	for _, h := range s.hops {
		c = h.ToBridge(c)
	}
	return c
}

// FromCanonical converts the given CIE XYZ D65 coordinates to
// space s. It panics if s is not registered.
func FromCanonical(s *Space, xyz [3]float64) [3]float64 {
	mustBeRegistered(s)
	for i := len(s.hops) - 1; i >= 0; i-- {
		xyz = s.hops[i].FromBridge(xyz)
	}
	return xyz
}

// Convert converts the given coordinates from one space to another.
func Convert(from, to *Space, c [3]float64) [3]float64 {
	if from == to {
		mustBeRegistered(from)
		return c
	}
	return FromCanonical(to, ToCanonical(from, c))
}
