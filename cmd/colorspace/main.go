// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command colorspace converts, fits, mixes and compares colors
// across the registered color spaces.
package main

import (
	"os"

	"cogentcore.org/colorspace/base/errors"
	"cogentcore.org/colorspace/cmd/colorspace/cmd"
)

func main() {
	if errors.Log(cmd.NewRoot().Execute()) != nil {
		os.Exit(1)
	}
}
