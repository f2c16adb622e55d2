// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockT struct{ failed bool }

func (m *mockT) Errorf(format string, args ...any) { m.failed = true }

func TestEqual(t *testing.T) {
	Equal(t, 0.92605, 0.926051)
	Equal(t, float32(1), float32(1.00001))
	EqualTol(t, 60.0, 60.4, 0.5)
	EqualSlice(t, []float64{1, 2, 3}, []float64{1.00001, 2, 2.99999})

	mt := &mockT{}
	assert.False(t, Equal(mt, 1.0, 1.1))
	assert.True(t, mt.failed)
	assert.False(t, EqualSlice(&mockT{}, []float64{1, 2}, []float64{1}))
	assert.False(t, EqualTolSlice(&mockT{}, []float64{1, 2}, []float64{1, 2.5}, 0.1))
}
