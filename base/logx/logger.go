// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// levelColors are the terminal colors used for the level tag.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "#8a8a8a",
	slog.LevelInfo:  "#3c89d0",
	slog.LevelWarn:  "#d59a00",
	slog.LevelError: "#e0443e",
}

// NewLogger returns a text [slog.Logger] writing to w at [UserLevel].
// The level tag is colored when w is a terminal that supports it.
func NewLogger(w io.Writer) *slog.Logger {
	out := termenv.NewOutput(w)
	prof := out.ColorProfile()
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 || prof == termenv.Ascii {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			clr, ok := levelColors[lvl]
			if !ok {
				return a
			}
			a.Value = slog.StringValue(prof.String(lvl.String()).Foreground(prof.Color(clr)).String())
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SetDefaultLogger sets the default [slog] logger to one
// writing to stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}
