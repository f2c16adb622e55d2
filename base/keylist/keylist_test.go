// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	var kl List[string, int]
	assert.Equal(t, 0, kl.Len())
	assert.NoError(t, kl.Add("srgb", 1))
	assert.NoError(t, kl.Add("lab", 2))
	assert.Error(t, kl.Add("srgb", 3))

	assert.Equal(t, 2, kl.Len())
	assert.Equal(t, []string{"srgb", "lab"}, kl.Keys)
	assert.Equal(t, []int{1, 2}, kl.Values)
	assert.Equal(t, 2, kl.At("lab"))
	assert.Equal(t, 0, kl.At("oklab"))
	_, ok := kl.AtTry("oklab")
	assert.False(t, ok)
	assert.Equal(t, 1, kl.IndexByKey("lab"))
	assert.Equal(t, -1, kl.IndexByKey("hsl"))

	var nl *List[string, int]
	assert.Equal(t, 0, nl.Len())
}
