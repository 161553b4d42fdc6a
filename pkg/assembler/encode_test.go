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
	"testing"

	"github.com/rsilvestre/w15asm/pkg/assembler"
)

// TestAssembleMovImmediateToRegister exercises mov #5, r3 / stop end to end
// and checks the header and extra words against the instruction word layout.
// The source is Immediate and the destination is DirectRegister, which are
// not both register-style, so each gets its own extra word: header,
// immediate word, register word, then stop's header.
func TestAssembleMovImmediateToRegister(t *testing.T) {
	writeSourceFile(t, "s1.as", "MAIN: mov #5, r3\n stop\n")

	result := assembler.Assemble([]string{"s1.as"})
	if result.Diagnostics.Any() {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics.Entries())
	}

	if result.ICFinal != 4 || result.DCFinal != 0 {
		t.Fatalf("want IC=4 DC=0, have IC=%d DC=%d", result.ICFinal, result.DCFinal)
	}

	if len(result.Instructions) != 4 {
		t.Fatalf("want 4 instruction words, have %d", len(result.Instructions))
	}

	header := result.Instructions[0]
	if header.Address != 100 {
		t.Fatalf("want header at 100, have %d", header.Address)
	}
	wantHeader := assembler.Word(assembler.OpMov)<<11 | assembler.Word(assembler.ModeImmediate)<<7 | assembler.Word(assembler.ModeDirectRegister)<<3 | assembler.Word(assembler.AREAbsolute)
	if header.Data != wantHeader {
		t.Fatalf("want header %015b, have %015b", wantHeader, header.Data)
	}

	imm := result.Instructions[1]
	wantImm := assembler.Word(5)<<3 | assembler.Word(assembler.AREAbsolute)
	if imm.Data != wantImm {
		t.Fatalf("want immediate word %015b, have %015b", wantImm, imm.Data)
	}

	reg := result.Instructions[2]
	wantReg := assembler.Word(3)<<6 | assembler.Word(assembler.AREAbsolute)
	if reg.Data != wantReg {
		t.Fatalf("want register word %015b, have %015b", wantReg, reg.Data)
	}

	stopWord := result.Instructions[3]
	wantStop := assembler.Word(assembler.OpStop)<<11 | assembler.Word(assembler.AREAbsolute)
	if stopWord.Data != wantStop {
		t.Fatalf("want stop word %015b, have %015b", wantStop, stopWord.Data)
	}
}
