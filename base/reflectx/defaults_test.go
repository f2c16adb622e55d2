// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mode int

func (m *mode) UnmarshalText(text []byte) error {
	*m = mode(len(text))
	return nil
}

type inner struct {
	Level int `default:"3"`
}

type options struct {
	Name    string  `default:"srgb"`
	Amount  float64 `default:"0.5"`
	Steps   uint8   `default:"7"`
	Verbose bool    `default:"true"`
	Mode    mode    `default:"four"`
	Untag   int
	Inner   inner
	hidden  int `default:"9"`
}

func TestSetFromDefaultTags(t *testing.T) {
	o := &options{Untag: 2}
	assert.NoError(t, SetFromDefaultTags(o))
	assert.Equal(t, "srgb", o.Name)
	assert.Equal(t, 0.5, o.Amount)
	assert.Equal(t, uint8(7), o.Steps)
	assert.True(t, o.Verbose)
	assert.Equal(t, mode(4), o.Mode)
	assert.Equal(t, 2, o.Untag)
	assert.Equal(t, 3, o.Inner.Level)
	assert.Equal(t, 0, o.hidden)

	var np *options
	assert.NoError(t, SetFromDefaultTags(np))
	assert.NoError(t, SetFromDefaultTags(nil))
	n := 3
	assert.Error(t, SetFromDefaultTags(&n))
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	type bad struct {
		A int     `default:"one"`
		B float64 `default:"x"`
		C []int   `default:"1"`
	}
	err := SetFromDefaultTags(&bad{})
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), "field A"))
		assert.True(t, strings.Contains(err.Error(), "field B"))
		assert.True(t, strings.Contains(err.Error(), "field C"))
	}
}

func TestPointers(t *testing.T) {
	x := 1
	px := &x
	ppx := &px
	assert.Equal(t, reflect.TypeOf(x), NonPointerType(reflect.TypeOf(ppx)))
	assert.Nil(t, NonPointerType(nil))
	assert.Equal(t, 1, NonPointerValue(reflect.ValueOf(ppx)).Interface())
	var nilp *int
	assert.False(t, NonPointerValue(reflect.ValueOf(nilp)).IsValid())
	v := reflect.ValueOf(px).Elem()
	assert.Equal(t, px, PointerValue(v).Interface())
	assert.Equal(t, px, PointerValue(reflect.ValueOf(px)).Interface())
}
