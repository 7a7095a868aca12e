// Package main provides the CLI entrypoint for to.
//
// to reads JSON, YAML and TOML documents and applies the structural transforms of the
// library to them:
//   - merge documents deeply, reporting conflicting keys
//   - flatten nested mappings into dotted keys and back
//   - sort keys, list keys, collect object entries and unique values
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
