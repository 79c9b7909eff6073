// Package main provides the CLI entrypoint for structmapper.
//
// structmapper resolves field correspondences between Go struct pairs:
//   - Parses Go packages (AST + go/types) to understand records, accessors and directives
//   - Reads explicit class map declarations from YAML
//   - Infers the correspondences the declarations leave open
//   - Prints the resolved class maps in the same YAML schema
package main

import (
	"fmt"
	"os"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
