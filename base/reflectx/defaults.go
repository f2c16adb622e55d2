// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides the small set of reflection helpers used
// to apply `default:` struct tags to configuration values.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/colorspace/base/errors"
)

// SetFromDefaultTags sets the fields of the given struct pointer from
// their `default:` struct tags. Nested structs without a tag are
// descended into. All fields that could not be set are reported in the
// returned error.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	val := NonPointerValue(reflect.ValueOf(obj))
	if !val.IsValid() {
		return nil
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: expected a struct, not %s", val.Type())
	}
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || def == "" {
			if f.Type.Kind() == reflect.Struct {
				errs = append(errs, SetFromDefaultTags(fv.Addr().Interface()))
			}
			continue
		}
		if err := SetFromString(fv.Addr(), def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the value pointed to by ptr from the given string.
// Types implementing [encoding.TextUnmarshaler] are set through it;
// otherwise strings, bools, and numeric kinds are parsed directly.
func SetFromString(ptr reflect.Value, s string) error {
	if tu, ok := ptr.Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	v := ptr.Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("cannot set value of kind %s from a string", v.Kind())
	}
	return nil
}
