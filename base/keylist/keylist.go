// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist implements an append-only ordered list of
// values with a map from keys to indexes, for registries that
// need both registration order and fast lookup by name.
package keylist

import (
	"fmt"
)

// List is an ordered list of Values with a parallel list of Keys.
// The zero value is ready to use.
type List[K comparable, V any] struct {

	// Values is the ordered slice of items.
	Values []V

	// Keys is the ordered list of keys, in the same order as Values.
	Keys []K

	indexes map[K]int
}

// Add appends the value with the given key, returning an
// error if the key is already on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// At returns the value for the given key, or the zero value.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value for the given key and whether it exists.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// IndexByKey returns the index of the given key, or -1.
func (kl *List[K, V]) IndexByKey(key K) int {
	if idx, ok := kl.indexes[key]; ok {
		return idx
	}
	return -1
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}
