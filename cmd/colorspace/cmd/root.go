// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the colorspace tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"cogentcore.org/colorspace/base/logx"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/config"
	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// app is the state shared by all commands of one invocation.
type app struct {
	cfg *config.Config

	configFile string
	verbose    bool
	veryVerb   bool
	quiet      bool
	swatch     bool

	fit       string
	precision int
}

// NewRoot returns the root colorspace command with all of its
// subcommands added.
func NewRoot() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "colorspace",
		Short:         "Convert, fit and mix colors between CSS color spaces",
		Long:          "Convert, fit and mix colors between CSS color spaces.\nPut negative coordinates after a -- separator.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (.toml, .yaml or .yml)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&a.veryVerb, "vv", false, "log debug messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only log errors")
	pf.BoolVar(&a.swatch, "swatch", false, "print a swatch of the resulting sRGB color")

	root.AddCommand(
		a.spacesCmd(),
		a.convertCmd(),
		a.fitCmd(),
		a.gamutCmd(),
		a.mixCmd(),
		a.deltaCmd(),
	)
	return root
}

// setup installs the logger and loads the configuration.
func (a *app) setup(cmd *cobra.Command) error {
	logx.UserLevel = logx.LevelFromFlags(a.veryVerb, a.verbose, a.quiet)
	slog.SetDefault(logx.NewLogger(cmd.ErrOrStderr()))
	a.cfg = config.New()
	if a.configFile == "" {
		return nil
	}
	if err := config.Open(a.cfg, a.configFile); err != nil {
		return err
	}
	slog.Info("loaded config", "file", a.configFile, "spaces", len(a.cfg.Spaces))
	return a.cfg.RegisterSpaces()
}

// addFitFlags adds the --fit and --precision flags to cmd.
func (a *app) addFitFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.fit, "fit", "", "gamut mapping method (default from config)")
	cmd.Flags().IntVar(&a.precision, "precision", -1, "rounding precision, negative for the space default (default from config)")
}

// fitSettings returns the fitting method and precision for cmd,
// from its flags when they are set and the config otherwise.
func (a *app) fitSettings(cmd *cobra.Command) (gamut.Methods, int, error) {
	method, prec := a.cfg.Fit, a.cfg.Precision
	if cmd.Flags().Changed("fit") {
		if err := method.SetString(a.fit); err != nil {
			return method, prec, err
		}
	}
	if cmd.Flags().Changed("precision") {
		prec = a.precision
	}
	return method, prec, nil
}

// parseCoords parses three coordinates and an optional alpha.
func parseCoords(args []string) ([3]float64, float64, error) {
	var c [3]float64
	alpha := 1.0
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return c, alpha, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		if i < 3 {
			c[i] = v
		} else {
			alpha = v
		}
	}
	return c, alpha, nil
}

// parseColor parses a color in s from three coordinates and an optional alpha.
func parseColor(s *space.Space, args []string) (colors.Color, error) {
	c, alpha, err := parseCoords(args)
	if err != nil {
		return colors.Color{}, err
	}
	return colors.FromCoords(s, c, alpha), nil
}

// formatCoords formats fitted coordinates in the space with the given name.
func formatCoords(name string, v [4]float64) string {
	return fmt.Sprintf("%s(%g %g %g / %g)", name, v[0], v[1], v[2], v[3])
}

// printColor prints the coordinates of c in s, followed by a swatch if requested.
func (a *app) printColor(w io.Writer, c colors.Color, s *space.Space, method gamut.Methods, prec int) {
	fmt.Fprintln(w, formatCoords(s.Name, c.In(s).GetCoords(method, prec)))
	if a.swatch {
		printSwatch(w, c)
	}
}

// printSwatch prints a block with the clipped sRGB color of c as its background.
func printSwatch(w io.Writer, c colors.Color) {
	out := termenv.NewOutput(w)
	prof := out.ColorProfile()
	rgba := c.AsRGBA()
	hex := fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	fmt.Fprintln(w, prof.String("        ").Background(prof.Color(hex)))
}
