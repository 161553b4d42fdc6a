// Copyright (C) 2024  R. Silvestre

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rsilvestre/w15asm/pkg/assembler"
	"github.com/rsilvestre/w15asm/pkg/listing"
)

var (
	outOverride string
	wantListing bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "w15asm file1 [file2 …]",
	Short: "Two-pass assembler for the 15-bit pedagogical word machine",
	Long: `w15asm reads one or more assembly source files sharing a single
translation unit group, expands user-defined macros, resolves labels
across a second pass, and emits an object file, an entries file and an
externals file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(resolveInputs(args))
	},
}

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	rootCmd.Flags().StringVarP(&outOverride, "out", "o", "", "override the computed output base name")
	rootCmd.Flags().BoolVarP(&wantListing, "listing", "S", false, "print an address-annotated listing to stdout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report preprocessor warnings in addition to errors")
}

// resolveInputs appends the ".as" suffix to any argument that doesn't
// already carry an extension.
func resolveInputs(args []string) []string {
	paths := make([]string, len(args))
	for i, a := range args {
		if filepath.Ext(a) == "" {
			a += ".as"
		}
		paths[i] = a
	}
	return paths
}

func run(paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("%s: not found or unreadable", p)
		}
	}

	result := assembler.Assemble(paths)

	if verbose {
		for _, w := range result.Warnings {
			log.Println(w)
		}
	}

	if result.Diagnostics.Any() {
		result.Diagnostics.Drain(os.Stderr)
		return fmt.Errorf("assembly failed with errors")
	}

	if outOverride != "" {
		result.BaseName = outOverride
	}

	if err := result.Emit(); err != nil {
		return err
	}

	if wantListing {
		listing.Print(os.Stdout, listing.Build(result))
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
