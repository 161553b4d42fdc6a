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

func TestMacroTableAddAndFind(t *testing.T) {
	mt := assembler.NewMacroTable()
	mt.Add("INC1", []string{" inc r1"})

	m, ok := mt.Find("INC1")
	if !ok {
		t.Fatal("INC1 not found after Add")
	}
	if len(m.Body) != 1 || m.Body[0] != " inc r1" {
		t.Fatalf("unexpected body: %+v", m.Body)
	}

	if _, ok := mt.Find("NOPE"); ok {
		t.Fatal("Find matched a name that was never added")
	}
}

func TestMacroTableReset(t *testing.T) {
	mt := assembler.NewMacroTable()
	mt.Add("M", []string{"stop"})
	mt.Reset()

	if _, ok := mt.Find("M"); ok {
		t.Fatal("Reset left a stale macro")
	}
}
