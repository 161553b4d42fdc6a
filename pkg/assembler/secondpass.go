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

package assembler

// externalUse records one instruction word whose content is a reference to
// an external label, for the emitter's .ext stream.
type externalUse struct {
	Name    string
	Address int
}

// SecondPass walks every placeholder instruction word, backfills its final
// content from the symbol table, and then runs the group-wide entry/extern
// consistency checks. It returns the external reference sites the emitter
// needs for the .ext file.
func SecondPass(diags *Diagnostics, symbols *SymbolTable, instructions []*Node) []externalUse {
	var externals []externalUse

	for _, n := range instructions {
		if n.Label == "" {
			continue
		}

		label, ok := symbols.Find(n.Label)
		if !ok || !label.Declared && !label.External {
			diags.Add(LabelNotDeclared, n.File, n.Line, n.Label)
			continue
		}

		switch {
		case label.External:
			n.Data = encodeExtraAddress(0, AREExternal)
			externals = append(externals, externalUse{Name: n.Label, Address: n.Address})
		case label.Entry:
			n.Data = encodeExtraAddress(label.Address, ARERelocatable)
		default:
			n.Data = encodeExtraAddress(label.Address, ARERelocatable)
		}
	}

	checkLabelConsistency(diags, symbols)

	return externals
}

// checkLabelConsistency runs the group-wide entry/extern consistency checks.
// Each label is judged by exactly one branch of the switch below, so at
// most one diagnostic fires per label even when several conditions
// technically hold at once.
//
// A plain "referenced but never declared and not external" label is
// deliberately not checked here: every such reference already produced a
// placeholder instruction word, and SecondPass's walk over those words
// above reports LABEL_NOT_DECLARED with the referencing file/line, which
// this loop cannot reconstruct (the symbol record carries no file/line for
// a reference-only upsert). Checking it again here would double-report it.
//
// The last branch excludes a label already marked Conflicted: handleEntry
// and handleExtern set it when they reject a second .entry/.extern against
// a label that is already Entry, so an entry that was immediately flagged
// as conflicting does not also get reported here as merely undeclared.
func checkLabelConsistency(diags *Diagnostics, symbols *SymbolTable) {
	for _, l := range symbols.InOrder() {
		switch {
		case l.External && l.Entry:
			diags.Add(EntryLabelExternal, l.File, l.Line, l.Name)
		case l.External && l.Declared:
			diags.Add(LabelAlreadyDeclared, l.File, l.Line, l.Name)
		case l.Entry && !l.Declared && !l.Conflicted:
			diags.Add(LabelNotDeclared, l.File, l.Line, l.Name)
		}
	}
}
