// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package space defines color spaces: their component schemas,
// the bridge graph connecting every space to the canonical
// CIE XYZ D65 space, and conversion along that graph.
//
// Spaces are registered in a static table at package initialization;
// additional spaces can be registered with [Register] during startup,
// before any concurrent use. The table is read-only afterward.
package space

import (
	"slices"
)

// Space describes one color space. It must not be modified
// after it has been passed to [Register].
type Space struct {

	// Name is the unique name of the space, such as "srgb".
	Name string

	// Components are the three components of the space, in order.
	Components [3]Component

	// Precision is the default number of decimal digits
	// that coordinates are rounded to when fitted.
	Precision int

	// Gamut is the name of the bounded RGB-like space whose unit
	// cube defines which colors of this space are in gamut.
	// It is "" for unbounded spaces such as lab and xyz-d65.
	Gamut string

	// Bridge is the name of the space that this space converts
	// through on its way to the canonical space. The canonical
	// space names itself.
	Bridge string

	// ToBridge converts coordinates of this space to the bridge space.
	ToBridge func(c [3]float64) [3]float64

	// FromBridge converts coordinates of the bridge space to this space.
	FromBridge func(c [3]float64) [3]float64

	// gamut is the resolved Gamut space.
	gamut *Space

	// hops are the spaces from this one up to, but not
	// including, the canonical space.
	hops []*Space

	registered bool
}

// GamutSpace returns the space defining the gamut of this space,
// or nil if the space is unbounded.
func (s *Space) GamutSpace() *Space {
	return s.gamut
}

// IsBounded returns whether the space has a finite gamut.
func (s *Space) IsBounded() bool {
	return s.Gamut != ""
}

// IsCanonical returns whether the space is the terminal node
// of the bridge graph.
func (s *Space) IsCanonical() bool {
	return s.Bridge == s.Name
}

// Hops returns the number of bridge hops from this space
// to the canonical space.
func (s *Space) Hops() int {
	return len(s.hops)
}

// Component returns the component with the given name.
func (s *Space) Component(name string) (Component, bool) {
	for _, c := range s.Components {
		if c.Name == name {
			return c, true
		}
	}
	return Component{}, false
}

// ComponentNames returns the names of the components in order.
func (s *Space) ComponentNames() []string {
	return []string{s.Components[0].Name, s.Components[1].Name, s.Components[2].Name}
}

// HueIndex returns the index of the hue component, or -1 if there is none.
func (s *Space) HueIndex() int {
	return slices.IndexFunc(s.Components[:], func(c Component) bool {
		return c.Domain.IsHue()
	})
}

func (s *Space) String() string {
	return s.Name
}
