// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides the user configuration for color conversion:
// default fitting and mixing settings, and custom RGB space definitions,
// read from TOML or YAML files.
package config

import (
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/base/iox/tomlx"
	"cogentcore.org/colorspace/base/iox/yamlx"
	"cogentcore.org/colorspace/base/reflectx"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
	"golang.org/x/exp/maps"
)

// Config is the configuration for converting, fitting and mixing colors.
type Config struct {

	// Fit is the gamut mapping method used when reading coordinates.
	Fit gamut.Methods `default:"clip" toml:"fit" yaml:"fit"`

	// Precision overrides the rounding precision of the target space
	// when it is not negative.
	Precision int `default:"-1" toml:"precision" yaml:"precision"`

	// Space is the default target space of conversions.
	Space string `default:"srgb" toml:"space" yaml:"space"`

	// Hue is the hue interpolation method used for mixing.
	Hue colors.HueInterpolations `default:"shorter" toml:"hue" yaml:"hue"`

	// Amount is the default mix amount, in [0, 1].
	Amount float64 `default:"0.5" toml:"amount" yaml:"amount"`

	// Gamma is the gamma correction exponent applied to mix progress.
	Gamma float64 `default:"1" toml:"gamma" yaml:"gamma"`

	// Spaces are custom RGB spaces, keyed by name.
	Spaces map[string]SpaceDef `toml:"spaces" yaml:"spaces"`
}

// SpaceDef defines a custom RGB-like space.
type SpaceDef struct {

	// Primaries are the xy chromaticities of the red, green and blue primaries.
	Primaries [3][2]float64 `toml:"primaries" yaml:"primaries"`

	// White is the xy chromaticity of the white point; D65 if unset.
	White [2]float64 `toml:"white" yaml:"white"`

	// Transfer names the transfer function: srgb, linear, a98,
	// rec2020, prophoto or gamma.
	Transfer string `toml:"transfer" yaml:"transfer"`

	// Gamma is the exponent of the gamma transfer function.
	Gamma float64 `toml:"gamma" yaml:"gamma"`

	// Precision is the rounding precision; 5 if unset.
	Precision int `toml:"precision" yaml:"precision"`
}

// New returns a new [Config] with its default values set.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// Open reads the given config file on top of the current values of cfg,
// choosing the format from the file extension, and validates the result.
func Open(cfg *Config, file string) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = tomlx.Open(cfg, file)
	case ".yaml", ".yml":
		err = yamlx.Open(cfg, file)
	default:
		return fmt.Errorf("config: unsupported file extension %q for %s", ext, file)
	}
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate returns an error if any of the settings are out of range.
func (c *Config) Validate() error {
	var errs []error
	if !c.Fit.IsValid() {
		errs = append(errs, fmt.Errorf("config: invalid fit method %d", c.Fit))
	}
	if !c.Hue.IsValid() {
		errs = append(errs, fmt.Errorf("config: invalid hue interpolation %d", c.Hue))
	}
	if !(c.Amount >= 0 && c.Amount <= 1) {
		errs = append(errs, fmt.Errorf("config: amount %g is not in [0, 1]", c.Amount))
	}
	if !(c.Gamma > 0) || math.IsInf(c.Gamma, 0) {
		errs = append(errs, fmt.Errorf("config: gamma %g is not positive", c.Gamma))
	}
	return errors.Join(errs...)
}

// RegisterSpaces creates and registers the custom spaces in [Config.Spaces],
// in sorted name order. It stops at the first space that fails.
func (c *Config) RegisterSpaces() error {
	names := maps.Keys(c.Spaces)
	slices.Sort(names)
	for _, name := range names {
		s, err := c.Spaces[name].NewSpace(name)
		if err != nil {
			return err
		}
		if err := space.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// NewSpace returns a new unregistered RGB-like space with the given name.
func (d SpaceDef) NewSpace(name string) (*space.Space, error) {
	tr, err := space.TransferByName(d.Transfer, d.Gamma)
	if err != nil {
		return nil, fmt.Errorf("config: space %q: %w", name, err)
	}
	opts := space.RGBOptions{
		Name:      name,
		White:     space.Chromaticity{X: d.White[0], Y: d.White[1]},
		Transfer:  tr,
		Precision: d.Precision,
	}
	for i, p := range d.Primaries {
		opts.Primaries[i] = space.Chromaticity{X: p[0], Y: p[1]}
	}
	return space.NewRGB(opts)
}

// Target returns the registered space named by [Config.Space].
func (c *Config) Target() (*space.Space, error) {
	return space.Lookup(c.Space)
}

// MixOptions returns the mixing options for the given amount,
// using the configured hue interpolation and gamma.
func (c *Config) MixOptions(amount float64) *colors.MixOptions {
	return &colors.MixOptions{Amount: amount, Hue: c.Hue, Gamma: c.Gamma}
}

// Coords returns the coordinates and alpha of the model color,
// fitted with the configured method and precision.
func (c *Config) Coords(m colors.Model) [4]float64 {
	return m.GetCoords(c.Fit, c.Precision)
}
