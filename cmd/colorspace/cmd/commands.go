// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/gamut"
	"cogentcore.org/colorspace/space"
	"github.com/spf13/cobra"
)

func (a *app) spacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List the registered color spaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCOMPONENTS\tGAMUT\tBRIDGE")
			for _, s := range space.All() {
				comps := make([]string, len(s.Components))
				for i, c := range s.Components {
					comps[i] = c.String()
				}
				g := "-"
				if s.IsBounded() {
					g = s.Gamut
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, strings.Join(comps, ", "), g, s.Bridge)
			}
			return tw.Flush()
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <from> <to> c0 c1 c2 [alpha]",
		Short: "Convert a color from one space to another",
		Args:  cobra.RangeArgs(5, 6),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := space.Lookup(args[0])
			if err != nil {
				return err
			}
			to, err := space.Lookup(args[1])
			if err != nil {
				return err
			}
			c, err := parseColor(from, args[2:])
			if err != nil {
				return err
			}
			method, prec, err := a.fitSettings(cmd)
			if err != nil {
				return err
			}
			a.printColor(cmd.OutOrStdout(), c, to, method, prec)
			return nil
		},
	}
	a.addFitFlags(cmd)
	return cmd
}

func (a *app) fitCmd() *cobra.Command {
	var method string
	var prec int
	cmd := &cobra.Command{
		Use:   "fit <space> c0 c1 c2",
		Short: "Fit coordinates into the gamut of their space",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := space.Lookup(args[0])
			if err != nil {
				return err
			}
			c, _, err := parseCoords(args[1:])
			if err != nil {
				return err
			}
			m := a.cfg.Fit
			if cmd.Flags().Changed("method") {
				if err := m.SetString(method); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("precision") {
				prec = a.cfg.Precision
			}
			v := gamut.Fit(c, s, m, prec)
			fmt.Fprintf(cmd.OutOrStdout(), "%s(%g %g %g)\n", s.Name, v[0], v[1], v[2])
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "", "gamut mapping method (default from config)")
	cmd.Flags().IntVar(&prec, "precision", -1, "rounding precision, negative for the space default")
	return cmd
}

func (a *app) gamutCmd() *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "gamut <space> c0 c1 c2",
		Short: "Report whether a color is in the gamut of a target space",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := space.Lookup(args[0])
			if err != nil {
				return err
			}
			c, err := parseColor(s, args[1:])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("target") {
				target = a.cfg.Space
			}
			t, err := space.Lookup(target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.InGamut(t, gamut.Epsilon))
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "target space (default from config)")
	return cmd
}

func (a *app) mixCmd() *cobra.Command {
	var amount, gamma float64
	var hue string
	cmd := &cobra.Command{
		Use:   "mix <space> a0 a1 a2 b0 b1 b2",
		Short: "Mix two colors in a space",
		Args:  cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := space.Lookup(args[0])
			if err != nil {
				return err
			}
			ca, err := parseColor(s, args[1:4])
			if err != nil {
				return err
			}
			cb, err := parseColor(s, args[4:7])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("amount") {
				amount = a.cfg.Amount
			}
			opts := a.cfg.MixOptions(amount)
			if cmd.Flags().Changed("gamma") {
				opts.Gamma = gamma
			}
			if cmd.Flags().Changed("hue") {
				if err := opts.Hue.SetString(hue); err != nil {
					return err
				}
			}
			if !(opts.Amount >= 0 && opts.Amount <= 1) || !(opts.Gamma > 0) {
				return fmt.Errorf("mix: amount %g must be in [0, 1] and gamma %g positive", opts.Amount, opts.Gamma)
			}
			method, prec, err := a.fitSettings(cmd)
			if err != nil {
				return err
			}
			a.printColor(cmd.OutOrStdout(), colors.Mix(s, ca, cb, opts), s, method, prec)
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0.5, "fraction of the second color (default from config)")
	cmd.Flags().Float64Var(&gamma, "gamma", 1, "gamma applied to the mix progress (default from config)")
	cmd.Flags().StringVar(&hue, "hue", "", "hue interpolation: shorter, longer, increasing or decreasing (default from config)")
	a.addFitFlags(cmd)
	return cmd
}

func (a *app) deltaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delta <space> a0 a1 a2 b0 b1 b2",
		Short: "Report the OKLab difference and WCAG contrast of two colors",
		Args:  cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := space.Lookup(args[0])
			if err != nil {
				return err
			}
			ca, err := parseColor(s, args[1:4])
			if err != nil {
				return err
			}
			cb, err := parseColor(s, args[4:7])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "deltaE-ok: %.5f\n", colors.DeltaEOK(ca, cb))
			fmt.Fprintf(w, "contrast: %.5f\n", colors.Contrast(ca, cb))
			return nil
		},
	}
}
