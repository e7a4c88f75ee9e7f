// Package main provides the CLI entry point for csvchart.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ukaji3/csvchart-go/internal/cli"
)

const (
	cmdName = "csvchart"

	shortDesc = "Render charts from CSV files"
	longDesc  = `csvchart loads CSV (or xlsx) tables, renders line, bar, and scatter
charts from two of their columns, and exports them as png, jpg, bmp, tiff,
svg, pdf, or xlsx files. The gallery command exports a set of
demonstration charts.`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
