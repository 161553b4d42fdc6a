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

// Package assembler implements the two-pass translation pipeline: macro
// expansion, first-pass encoding, second-pass label resolution, and
// artifact emission for one translation unit group.
package assembler

import "fmt"

// Assemble runs the full pipeline for one translation unit group: every
// path is read, macro-expanded, and fed through a single continuous first
// pass, then the accumulated streams run through the second pass
// unconditionally, so a run that already has first-pass diagnostics still
// reports every label-resolution and entry/extern diagnostic it can find
// instead of stopping short. Emit is what actually refuses to write
// artifacts once Diagnostics.Any() is true.
func Assemble(paths []string) *Result {
	diags := NewDiagnostics()
	symbols := NewSymbolTable()
	fp := NewFirstPass(diags, symbols, NewMacroTable())

	result := &Result{
		Diagnostics: diags,
		Symbols:     symbols,
		Files:       paths,
		BaseName:    BaseName(paths),
	}

	for _, path := range paths {
		sf, err := ReadSource(path)
		if err != nil {
			diags.Add(FileNotFound, path, 0, path)
			continue
		}

		pre := NewPreprocessor(diags)
		expanded := pre.Expand(path, sf.Lines())
		result.Warnings = append(result.Warnings, pre.Warnings...)
		result.Sources = append(result.Sources, FileLines{File: path, Lines: expanded})

		fp.macros = pre.Macros
		fp.Run(path, expanded)
	}

	result.Instructions = fp.Instructions
	result.Data = fp.Data
	result.ICFinal, result.DCFinal = fp.Finish()

	result.externals = SecondPass(diags, symbols, result.Instructions)

	return result
}

// Emit writes the object, entries and externals files for result, provided
// its diagnostics sink is empty. It is a no-op error otherwise: callers are
// expected to check Diagnostics.Any() first rather than rely on Emit's
// refusal as their only guard.
func (r *Result) Emit() error {
	if r.Diagnostics.Any() {
		return fmt.Errorf("refusing to emit artifacts for %s: diagnostics are not empty", r.BaseName)
	}

	e := NewEmitter(r.BaseName)
	if err := e.WriteObject(r.Instructions, r.Data, r.ICFinal, r.DCFinal); err != nil {
		return err
	}
	if err := e.WriteEntries(r.Symbols); err != nil {
		return err
	}
	if err := e.WriteExternals(r.externals); err != nil {
		return err
	}
	return nil
}
