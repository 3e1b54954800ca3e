/*
Command koishi draws "Genetics of the Subconscious" as straight-line paths into
an SVG file, which can later be smoothed in Inkscape, for example.

	koishi --preset heart -o heart.svg
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&cliOpts{}, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "koishi:", err)
		os.Exit(1)
	}
}
