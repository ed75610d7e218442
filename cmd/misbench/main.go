// SPDX-License-Identifier: MIT
// Package: peelmis/cmd/misbench
//
// misbench runs and reports parallel MIS benchmarks.
//
//	misbench gen grid grid.bin --rows 1000 --cols 1000
//	misbench run grid.bin --counter funnel --workers 8 --verify
//	misbench experiment sweep.hcl
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/peelmis/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "misbench:", err)
		os.Exit(1)
	}
}
