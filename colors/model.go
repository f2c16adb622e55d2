// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
)

// AlphaName is the name of the synthetic alpha component.
const AlphaName = "alpha"

// Coord is an optional coordinate for [Model.SetCoords].
// The zero value leaves the coordinate unchanged.
type Coord struct {
	Value float64
	Valid bool
}

// Val returns a valid [Coord] with the given value.
func Val(v float64) Coord {
	return Coord{Value: v, Valid: true}
}

// Keep is the [Coord] that leaves a coordinate unchanged.
var Keep = Coord{}

// Model is a view of a [Color] in one color space. It is cheap to
// create with [Color.In] and is not meant to be retained.
type Model struct {
	color Color
	space *space.Space
}

// In returns the model of the color in the given space.
// It panics if s is nil.
func (c Color) In(s *space.Space) Model {
	if s == nil {
		panic("colors: nil color space")
	}
	return Model{color: c, space: s}
}

// InName returns the model of the color in the named space.
func (c Color) InName(name string) (Model, error) {
	s, err := space.Lookup(name)
	if err != nil {
		return Model{}, err
	}
	return c.In(s), nil
}

// Space returns the space of the model.
func (m Model) Space() *space.Space {
	return m.space
}

// Color returns the color of the model.
func (m Model) Color() Color {
	return m.color
}

// coords returns the unfitted coordinates of the color in the
// model space: those of the last write if it was in this space.
func (m Model) coords() [3]float64 {
	if m.color.space == m.space {
		return m.color.coords
	}
	return space.FromCanonical(m.space, m.color.xyz)
}

// GetCoords returns the coordinates of the color in the model space,
// fitted with the given method and optional precision (see [gamut.Fit]),
// followed by the alpha, which is clamped into [0, 1] and never fitted.
func (m Model) GetCoords(method gamut.Methods, precision ...int) [4]float64 {
	c := gamut.Fit(m.coords(), m.space, method, precision...)
	return [4]float64{c[0], c[1], c[2], m.color.Alpha()}
}

// Get is like [Model.GetCoords] but returns a map from component
// names, including [AlphaName], to values.
func (m Model) Get(method gamut.Methods, precision ...int) map[string]float64 {
	c := m.GetCoords(method, precision...)
	res := make(map[string]float64, 4)
	for i, comp := range m.space.Components {
		res[comp.Name] = c[i]
	}
	res[AlphaName] = c[3]
	return res
}

// index returns the coordinate index of the named component,
// with 3 for alpha.
func (m Model) index(name string) (int, error) {
	if name == AlphaName {
		return 3, nil
	}
	if comp, ok := m.space.Component(name); ok {
		return comp.Index, nil
	}
	return -1, fmt.Errorf("color space %s has no component %q", m.space.Name, name)
}

// Set returns a new color with the named components, including
// [AlphaName], set to the given values. It returns an error for
// unknown component names, in which case nothing is set.
func (m Model) Set(values map[string]float64) (Color, error) {
	coords := make([]Coord, 4)
	for name, v := range values {
		i, err := m.index(name)
		if err != nil {
			return m.color, err
		}
		coords[i] = Val(v)
	}
	return m.SetCoords(coords...), nil
}

// Update returns a new color with each named component set to the
// result of its function, which receives the current unfitted value.
func (m Model) Update(fns map[string]func(prev float64) float64) (Color, error) {
	cur := m.unfitted()
	coords := make([]Coord, 4)
	for name, fn := range fns {
		i, err := m.index(name)
		if err != nil {
			return m.color, err
		}
		coords[i] = Val(fn(cur[i]))
	}
	return m.SetCoords(coords...), nil
}

// SetWith returns a new color with the components returned by fn set.
// fn receives all of the current unfitted values, by name.
func (m Model) SetWith(fn func(current map[string]float64) map[string]float64) (Color, error) {
	cur := m.unfitted()
	all := make(map[string]float64, 4)
	for i, comp := range m.space.Components {
		all[comp.Name] = cur[i]
	}
	all[AlphaName] = cur[3]
	return m.Set(fn(all))
}

func (m Model) unfitted() [4]float64 {
	c := m.coords()
	return [4]float64{c[0], c[1], c[2], m.color.alpha}
}

// SetCoords returns a new color with the given positional coordinates
// of the model space, followed by an optional alpha. A [Keep] entry,
// or a missing one, leaves that coordinate unchanged. NaN values are
// set to 0 and infinite values to the corresponding end of the domain
// of the component. Coordinates are not fitted: the color may be out
// of gamut until it is read with a fitting method.
func (m Model) SetCoords(coords ...Coord) Color {
	cur := m.coords()
	alpha := m.color.alpha
	for i, c := range coords {
		if !c.Valid || i > 3 {
			continue
		}
		if i == 3 {
			alpha = space.AlphaDomain.Normalize(c.Value)
			continue
		}
		cur[i] = m.space.Components[i].Domain.Normalize(c.Value)
	}
	return Color{
		xyz:    space.ToCanonical(m.space, cur),
		alpha:  alpha,
		space:  m.space,
		coords: cur,
	}
}
