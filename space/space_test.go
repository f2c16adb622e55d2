// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"testing"

	"cogentcore.org/colorspace/base/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{
		"xyz-d65", "xyz", "xyz-d50", "srgb", "display-p3", "rec2020", "a98-rgb",
		"prophoto-rgb", "rgb", "hsl", "hwb", "lab", "lch", "oklab", "oklch",
	}, Names()[:15])
	assert.Len(t, All(), len(Names()))
}

func TestHops(t *testing.T) {
	assert.Equal(t, 0, XYZD65.Hops())
	assert.True(t, XYZD65.IsCanonical())
	assert.Equal(t, 1, SRGB.Hops())
	assert.Equal(t, 2, HSL.Hops())
	assert.Equal(t, 3, LCH.Hops())
	assert.Equal(t, 2, OKLCH.Hops())
}

func TestGamutSpace(t *testing.T) {
	assert.Same(t, SRGB, SRGB.GamutSpace())
	assert.Same(t, SRGB, HSL.GamutSpace())
	assert.Same(t, SRGB, RGB.GamutSpace())
	assert.Nil(t, Lab.GamutSpace())
	assert.False(t, OKLCH.IsBounded())
	assert.True(t, DisplayP3.IsBounded())
}

func TestComponents(t *testing.T) {
	assert.Equal(t, []string{"h", "w", "b"}, HWB.ComponentNames())
	assert.Equal(t, 2, OKLCH.HueIndex())
	assert.Equal(t, 0, HSL.HueIndex())
	assert.Equal(t, -1, Lab.HueIndex())
	c, ok := LCH.Component("c")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Index)
	assert.Equal(t, 150.0, c.Domain.Max)
	_, ok = LCH.Component("alpha")
	assert.False(t, ok)
	assert.Equal(t, 0, RGB.Precision)
	assert.Equal(t, 255.0, RGB.Components[0].Domain.Max)
}

func TestLookup(t *testing.T) {
	s, err := Lookup("oklch")
	require.NoError(t, err)
	assert.Same(t, OKLCH, s)

	_, err = Lookup("cmyk")
	assert.ErrorIs(t, err, ErrUnknownSpace)
	assert.ErrorContains(t, err, `"cmyk"`)
	assert.Panics(t, func() { MustLookup("cmyk") })
}

// validSpace returns a new, unregistered space that
// passes validation, for mutating in tests.
func validSpace(name string) *Space {
	return newXYZ(name, XYZD65Name, identity, identity)
}

func TestRegister(t *testing.T) {
	s := validSpace("test-xyz")
	require.NoError(t, Register(s))
	assert.Same(t, s, MustLookup("test-xyz"))
	assert.Equal(t, [3]float64{0.1, 0.2, 0.3}, ToCanonical(s, [3]float64{0.1, 0.2, 0.3}))

	// registering the same space twice is rejected
	assert.Error(t, Register(s))

	child := validSpace("test-xyz-child")
	child.Bridge = "test-xyz"
	child.Gamut = "srgb"
	require.NoError(t, Register(child))
	assert.Equal(t, 2, child.Hops())
}

func TestRegisterErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(s *Space)
		msg    string
	}{
		{"duplicate", func(s *Space) { s.Name = "srgb" }, "already registered"},
		{"no name", func(s *Space) { s.Name = "" }, "no name"},
		{"no bridge", func(s *Space) { s.Bridge = "" }, "no bridge"},
		{"unknown bridge", func(s *Space) { s.Bridge = "cmyk" }, "unknown bridge"},
		{"own bridge", func(s *Space) { s.Bridge = s.Name }, "its own bridge"},
		{"no transforms", func(s *Space) { s.FromBridge = nil }, "bridge transforms"},
		{"no component name", func(s *Space) { s.Components[1].Name = "" }, "has no name"},
		{"duplicate component", func(s *Space) { s.Components[1].Name = "x" }, "duplicate"},
		{"alpha component", func(s *Space) { s.Components[2].Name = "alpha" }, "reserved"},
		{"bad index", func(s *Space) { s.Components[2].Index = 0 }, "index"},
		{"empty domain", func(s *Space) { s.Components[0].Domain = RangeDomain(1, 1) }, "greater than"},
		{"negative precision", func(s *Space) { s.Precision = -1 }, "precision"},
		{"unknown gamut", func(s *Space) { s.Gamut = "cmyk" }, "unknown gamut"},
		{"unbounded gamut", func(s *Space) { s.Gamut = "lab" }, "not a bounded"},
		{"hue gamut", func(s *Space) { s.Gamut = "hsl" }, "not a bounded"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := validSpace("test-invalid")
			test.modify(s)
			err := Register(s)
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), test.msg)
			}
			assert.False(t, s.registered)
		})
	}
	_, err := Lookup("test-invalid")
	assert.True(t, errors.Is(err, ErrUnknownSpace))
	assert.Error(t, Register(nil))
}

func TestUnregisteredPanics(t *testing.T) {
	s := validSpace("test-unregistered")
	assert.Panics(t, func() { ToCanonical(s, [3]float64{}) })
	assert.Panics(t, func() { FromCanonical(s, [3]float64{}) })
	assert.Panics(t, func() { Convert(s, s, [3]float64{}) })
	assert.Panics(t, func() { ToCanonical(nil, [3]float64{}) })
}
