// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package space

import (
	"fmt"
	"log/slog"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/keylist"
)

// XYZD65Name is the name of the canonical space, CIE XYZ relative to D65.
const XYZD65Name = "xyz-d65"

// ErrUnknownSpace is returned, wrapped, by [Lookup] for names
// that are not registered.
var ErrUnknownSpace = errors.New("unknown color space")

// registry is the table of all registered spaces, in registration order.
var registry keylist.List[string, *Space]

// Register validates the given space and adds it to the registry,
// resolving its gamut space and its hop list to the canonical space.
// It returns an error if the space is malformed, if its name is
// already registered, or if its bridge or gamut is unknown.
// Register must only be called during initialization, before
// the registry is used concurrently.
func Register(s *Space) error {
	if s == nil {
		return errors.New("space.Register: nil space")
	}
	if err := s.validate(); err != nil {
		return fmt.Errorf("space.Register: %w", err)
	}
	if registry.IndexByKey(s.Name) >= 0 {
		return fmt.Errorf("space.Register: color space %q is already registered", s.Name)
	}
	if s.IsCanonical() {
		if s.Name != XYZD65Name {
			return fmt.Errorf("space.Register: color space %q is its own bridge, but only %q can be", s.Name, XYZD65Name)
		}
	} else {
		bridge, ok := registry.AtTry(s.Bridge)
		if !ok {
			return fmt.Errorf("space.Register: color space %q has unknown bridge %q", s.Name, s.Bridge)
		}
		hops := append([]*Space{s}, bridge.hops...)
		if len(hops) > registry.Len() {
			return fmt.Errorf("space.Register: bridge chain of color space %q does not reach %q", s.Name, XYZD65Name)
		}
		s.hops = hops
	}
	if err := s.resolveGamut(); err != nil {
		s.hops = nil
		return fmt.Errorf("space.Register: %w", err)
	}
	s.registered = true
	errors.Must(registry.Add(s.Name, s))
	slog.Debug("registered color space", "name", s.Name, "bridge", s.Bridge, "gamut", s.Gamut, "hops", len(s.hops))
	return nil
}

func (s *Space) validate() error {
	if s.Name == "" {
		return errors.New("color space has no name")
	}
	if s.registered {
		return fmt.Errorf("color space %q is already registered", s.Name)
	}
	if s.Bridge == "" {
		return fmt.Errorf("color space %q has no bridge", s.Name)
	}
	if !s.IsCanonical() && (s.ToBridge == nil || s.FromBridge == nil) {
		return fmt.Errorf("color space %q is missing its bridge transforms", s.Name)
	}
	if s.Precision < 0 {
		return fmt.Errorf("color space %q has negative precision %d", s.Name, s.Precision)
	}
	seen := map[string]bool{"alpha": true}
	for i, c := range s.Components {
		if c.Name == "" {
			return fmt.Errorf("color space %q: component %d has no name", s.Name, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("color space %q: duplicate or reserved component name %q", s.Name, c.Name)
		}
		seen[c.Name] = true
		if c.Index != i {
			return fmt.Errorf("color space %q: component %q has index %d, want %d", s.Name, c.Name, c.Index, i)
		}
		if err := c.Domain.validate(); err != nil {
			return fmt.Errorf("color space %q: component %q: %w", s.Name, c.Name, err)
		}
	}
	return nil
}

// resolveGamut sets the gamut pointer. A space can be its own gamut,
// in which case it must have no hue component.
func (s *Space) resolveGamut() error {
	if s.Gamut == "" {
		return nil
	}
	g := s
	if s.Gamut != s.Name {
		var ok bool
		g, ok = registry.AtTry(s.Gamut)
		if !ok {
			return fmt.Errorf("color space %q has unknown gamut %q", s.Name, s.Gamut)
		}
	}
	if g.Gamut != g.Name || g.HueIndex() >= 0 {
		return fmt.Errorf("color space %q has gamut %q, which is not a bounded RGB-like space", s.Name, s.Gamut)
	}
	s.gamut = g
	return nil
}

// Lookup returns the registered space with the given name.
func Lookup(name string) (*Space, error) {
	s, ok := registry.AtTry(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSpace, name)
	}
	return s, nil
}

// MustLookup returns the registered space with the given name,
// panicking if there is none.
func MustLookup(name string) *Space {
	return errors.Must1(Lookup(name))
}

// Names returns the names of all registered spaces in registration order.
func Names() []string {
	return append([]string(nil), registry.Keys...)
}

// All returns all registered spaces in registration order.
func All() []*Space {
	return append([]*Space(nil), registry.Values...)
}
