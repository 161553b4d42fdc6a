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

package assembler_test

import (
	"reflect"
	"testing"

	"github.com/rsilvestre/w15asm/pkg/assembler"
)

func TestPreprocessorExpandsEveryCallSite(t *testing.T) {
	diags := assembler.NewDiagnostics()
	p := assembler.NewPreprocessor(diags)

	input := []string{
		"macr INC1",
		" inc r1",
		"endmacr",
		"INC1",
		"INC1",
		" stop",
	}

	out := p.Expand("m.as", input)

	want := []string{
		" inc r1",
		" inc r1",
		" stop",
	}

	if !reflect.DeepEqual(out, want) {
		t.Fatalf("want %v\nhave %v", want, out)
	}
	if diags.Any() {
		t.Fatalf("unexpected diagnostics: %v", diags.Entries())
	}
}

func TestPreprocessorPassesNonMacroLinesThrough(t *testing.T) {
	diags := assembler.NewDiagnostics()
	p := assembler.NewPreprocessor(diags)

	input := []string{"LOOP: add r1, r2", " stop"}
	out := p.Expand("m.as", input)

	if !reflect.DeepEqual(out, input) {
		t.Fatalf("want %v\nhave %v", input, out)
	}
}

func TestPreprocessorReportsMissingMacroName(t *testing.T) {
	diags := assembler.NewDiagnostics()
	p := assembler.NewPreprocessor(diags)

	p.Expand("m.as", []string{"macr", " stop", "endmacr"})

	if !diags.Any() {
		t.Fatal("expected a MacroNameMissing diagnostic")
	}
	if diags.Entries()[0].Code != assembler.MacroNameMissing {
		t.Fatalf("want MacroNameMissing, have %v", diags.Entries()[0].Code)
	}
}

func TestPreprocessorReportsInvalidMacroName(t *testing.T) {
	diags := assembler.NewDiagnostics()
	p := assembler.NewPreprocessor(diags)

	p.Expand("m.as", []string{"macr mov", " stop", "endmacr"})

	if !diags.Any() {
		t.Fatal("expected a MacroNameInvalid diagnostic")
	}
	if diags.Entries()[0].Code != assembler.MacroNameInvalid {
		t.Fatalf("want MacroNameInvalid, have %v", diags.Entries()[0].Code)
	}
}

func TestPreprocessorFlagsOverlongLines(t *testing.T) {
	diags := assembler.NewDiagnostics()
	p := assembler.NewPreprocessor(diags)

	long := make([]byte, 90)
	for i := range long {
		long[i] = 'a'
	}

	p.Expand("m.as", []string{string(long)})

	if len(p.Warnings) != 1 {
		t.Fatalf("want 1 warning, have %d: %v", len(p.Warnings), p.Warnings)
	}
}
