// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums provides the interfaces and helper functions
// used by the enum types of this module (fit methods, hue
// interpolations and domain kinds). Each enum type has an
// enumgen.go file holding its name tables and methods.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string

	// Values returns all possible values this enum type has.
	Values() []Enum
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// enum is the generic constraint of the helper functions.
type enum interface {
	Enum
	comparable
	~int32 | ~int64
}

// String returns the string representation of the given
// enum value with the given map. Unknown values are
// formatted as integers.
func String[T enum](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// SetString sets the given enum value from its string
// representation, the map from enum names to values, and the
// name of the enum type, which is used for the error message.
// The value is left unchanged on error.
func SetString[T enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is like [SetString] but also accepts any
// casing of the name, which it lowercases before lookup.
func SetStringLower[T enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value.
// If there is none, it returns the string representation.
func Desc[T enum](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values returns the given values as [Enum] values.
func Values[T enum](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

// UnmarshalText sets the enum value from its text representation,
// returning an error naming the type if the text is not a valid name.
func UnmarshalText[T enum](i *T, text []byte, valueMap map[string]T, typeName string) error {
	return SetStringLower(i, string(text), valueMap, typeName)
}
