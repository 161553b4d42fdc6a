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

import (
	"fmt"
	"io"
)

// Diagnostic is one accumulated error: a taxonomy code plus the file/line
// provenance and a free-form detail substituted into the code's template.
type Diagnostic struct {
	Code   Code
	File   string
	Line   int
	Detail string
}

var diagnosticTemplates = map[Code]func(detail string) string{
	FileNotFound:            func(d string) string { return fmt.Sprintf("file not found or unreadable: %s", d) },
	MacroNameMissing:        func(string) string { return "macro definition is missing a name" },
	MacroNameInvalid:        func(d string) string { return fmt.Sprintf("macro name %q is not valid", d) },
	MemoryAllocationFailed:  func(string) string { return "memory allocation failed" },
	UnexpectedToken:         func(d string) string { return fmt.Sprintf("unexpected token: %s", d) },
	InvalidLabelName:        func(d string) string { return fmt.Sprintf("invalid label name %q", d) },
	LabelNameUsedAsMacro:    func(d string) string { return fmt.Sprintf("label name %q collides with a macro", d) },
	ReservedWord:            func(d string) string { return fmt.Sprintf("%q is a reserved word and cannot name a label", d) },
	InvalidData:             func(d string) string { return fmt.Sprintf("invalid data value %q", d) },
	InvalidString:           func(d string) string { return fmt.Sprintf("invalid string literal %q", d) },
	InvalidInstruction:      func(d string) string { return fmt.Sprintf("invalid instruction: %s", d) },
	InvalidSourceOperand:    func(d string) string { return fmt.Sprintf("invalid source operand: %s", d) },
	InvalidDestOperand:      func(d string) string { return fmt.Sprintf("invalid destination operand: %s", d) },
	InvalidAddressMode:      func(d string) string { return fmt.Sprintf("addressing mode not permitted here: %s", d) },
	LabelAlreadyDeclared:    func(d string) string { return fmt.Sprintf("label %q is already declared", d) },
	LabelDeclaredAsExternal: func(d string) string { return fmt.Sprintf("label %q is already declared external", d) },
	EntryLabelExternal:      func(d string) string { return fmt.Sprintf("label %q cannot be both entry and external", d) },
	LabelNotDeclared:        func(d string) string { return fmt.Sprintf("label %q was never declared", d) },
}

func (d *Diagnostic) message() string {
	tmpl, ok := diagnosticTemplates[d.Code]
	if !ok {
		return d.Detail
	}
	return tmpl(d.Detail)
}

// Error formats the diagnostic the way every diagnostic in this taxonomy is
// reported: the file and line of the offending construct, then its message.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("Error in file %s at line %d: %s", d.File, d.Line, d.message())
}

// Diagnostics is the process-scoped accumulator for everything the core
// flags. It never unwinds control flow; callers append to it and keep going.
type Diagnostics struct {
	entries   []*Diagnostic
	hasErrors bool
}

// NewDiagnostics returns an empty sink.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// Add records one diagnostic and sets the sticky has-errors flag.
func (ds *Diagnostics) Add(code Code, file string, line int, detail string) {
	ds.entries = append(ds.entries, &Diagnostic{Code: code, File: file, Line: line, Detail: detail})
	ds.hasErrors = true
}

// Any reports whether any diagnostic has been recorded since the last reset.
func (ds *Diagnostics) Any() bool {
	return ds.hasErrors
}

// Entries returns the recorded diagnostics in the order they were added.
func (ds *Diagnostics) Entries() []*Diagnostic {
	return ds.entries
}

// Drain writes every diagnostic's formatted message to w, one per line.
func (ds *Diagnostics) Drain(w io.Writer) {
	for _, d := range ds.entries {
		fmt.Fprintln(w, d.Error())
	}
}

// Reset empties the sink so a fresh invocation leaves no residue.
func (ds *Diagnostics) Reset() {
	ds.entries = nil
	ds.hasErrors = false
}
