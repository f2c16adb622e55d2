// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type settings struct {
	Name  string
	Scale float64
	White [2]float64
}

func TestRead(t *testing.T) {
	var s settings
	err := Read(&s, strings.NewReader("Name = \"wide\"\nScale = 255.0\nWhite = [0.3127, 0.329]\n"))
	assert.NoError(t, err)
	assert.Equal(t, settings{Name: "wide", Scale: 255, White: [2]float64{0.3127, 0.329}}, s)

	assert.Error(t, Read(&s, strings.NewReader("Bogus = 1\n")))
	assert.NoError(t, ReadBytes(&s, []byte("Name = \"narrow\"")))
	assert.Equal(t, "narrow", s.Name)
}

func TestOpenFiles(t *testing.T) {
	var s settings
	assert.NoError(t, OpenFiles(&s, filepath.Join("testdata", "base.toml"), filepath.Join("testdata", "override.toml")))
	assert.Equal(t, "override", s.Name)
	assert.Equal(t, 100.0, s.Scale)

	err := Open(&s, filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)
}
