// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"fmt"
	"math"
)

// DomainKinds are the kinds of numeric domain that a [Component] can have.
type DomainKinds int32 //enums:enum

const (
	// Range is a bounded numeric range [Min, Max].
	Range DomainKinds = iota

	// Hue is a circular angle in degrees, [0, 360).
	Hue

	// Percentage is the bounded range [0, 100].
	Percentage
)

// Domain is the numeric domain of one color component.
type Domain struct {

	// Kind is the kind of domain.
	Kind DomainKinds

	// Min is the minimum value.
	Min float64

	// Max is the maximum value; for a [Hue] domain it is exclusive.
	Max float64
}

// Standard domains.
var (
	// HueDomain is the circular [0, 360) domain of a hue angle.
	HueDomain = Domain{Kind: Hue, Min: 0, Max: 360}

	// PercentDomain is the [0, 100] domain of a percentage.
	PercentDomain = Domain{Kind: Percentage, Min: 0, Max: 100}

	// UnitDomain is the [0, 1] domain used by RGB-like and XYZ components.
	UnitDomain = Domain{Kind: Range, Min: 0, Max: 1}

	// AlphaDomain is the [0, 1] domain of the synthetic alpha component.
	AlphaDomain = UnitDomain
)

// RangeDomain returns a bounded [Range] domain.
func RangeDomain(lo, hi float64) Domain {
	return Domain{Kind: Range, Min: lo, Max: hi}
}

// IsHue returns whether the domain is circular.
func (d Domain) IsHue() bool {
	return d.Kind == Hue
}

// Width returns Max - Min.
func (d Domain) Width() float64 {
	return d.Max - d.Min
}

// Wrap wraps v modulo the domain width into [Min, Max).
func (d Domain) Wrap(v float64) float64 {
	w := d.Width()
	v = math.Mod(v-d.Min, w)
	if v < 0 {
		v += w
	}
	v += d.Min
	if v >= d.Max {
		v = d.Min
	}
	return v
}

// Clip wraps hue values into [Min, Max) and clamps all
// other values into [Min, Max].
func (d Domain) Clip(v float64) float64 {
	if d.IsHue() {
		return d.Wrap(v)
	}
	return min(max(v, d.Min), d.Max)
}

// Normalize maps the special float values that can be written into a
// component: NaN becomes 0, +Inf becomes Max and -Inf becomes Min.
// All other values are returned unchanged.
func (d Domain) Normalize(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return d.Max
	case math.IsInf(v, -1):
		return d.Min
	}
	return v
}

// Contains returns whether v lies within [Min - epsilon, Max + epsilon].
// Hue domains contain every finite value.
func (d Domain) Contains(v, epsilon float64) bool {
	if d.IsHue() {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	}
	return v >= d.Min-epsilon && v <= d.Max+epsilon
}

func (d Domain) validate() error {
	if !d.Kind.IsValid() {
		return fmt.Errorf("invalid domain kind %d", d.Kind)
	}
	if math.IsNaN(d.Min) || math.IsNaN(d.Max) || math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0) {
		return fmt.Errorf("domain bounds must be finite, got [%g, %g]", d.Min, d.Max)
	}
	if d.Max <= d.Min {
		return fmt.Errorf("domain max %g must be greater than min %g", d.Max, d.Min)
	}
	return nil
}

func (d Domain) String() string {
	switch d.Kind {
	case Hue:
		return "hue"
	case Percentage:
		return "percentage"
	}
	return fmt.Sprintf("[%g, %g]", d.Min, d.Max)
}

// Component is one named axis of a color [Space].
type Component struct {

	// Name is the name of the component, such as "r" or "h".
	Name string

	// Index is the position of the component in the coordinates, 0-2.
	Index int

	// Domain is the numeric domain of the component.
	Domain Domain
}

func (c Component) String() string {
	return c.Name + " " + c.Domain.String()
}
