// Command bgsttool extracts the raster tiles of a BGST container into a
// directory of numbered PNG files.
//
// Usage:
//
//	bgsttool <file.bgst3> [mask]
//
// The literal second argument "mask" merges each tile with its
// transparency mask instead of writing mains and masks separately.
package main

import (
	"fmt"
	"os"

	"github.com/Swiftshine/bgst"
)

func main() {
	args := os.Args[1:]
	if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "mask") {
		fmt.Fprintln(os.Stderr, "usage: bgsttool <file.bgst3> [mask]")
		os.Exit(2)
	}

	opts := &bgst.Options{Composite: len(args) == 2}

	count, err := bgst.ExtractWithOptions(args[0], opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgsttool: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d images to %s\n", count, bgst.OutputDir(args[0]))
}
