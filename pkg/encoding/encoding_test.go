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

package encoding_test

import (
	"testing"

	"github.com/rsilvestre/w15asm/pkg/encoding"
)

func TestMask15DropsHighBit(t *testing.T) {
	if have := encoding.Mask15(-1); have != 0x7FFF {
		t.Fatalf("Mask15(-1) = %#x, want %#x", have, 0x7FFF)
	}
	if have := encoding.Mask15(0x8001); have != 0x0001 {
		t.Fatalf("Mask15(0x8001) = %#x, want %#x", have, 0x0001)
	}
}

func TestMask12KeepsOnlyTwelveBits(t *testing.T) {
	if have := encoding.Mask12(0x1FFF); have != 0x0FFF {
		t.Fatalf("Mask12(0x1FFF) = %#x, want %#x", have, 0x0FFF)
	}
}

func TestFormatOctalWord(t *testing.T) {
	if have := encoding.FormatOctalWord(5); have != "00005" {
		t.Fatalf("FormatOctalWord(5) = %q, want %q", have, "00005")
	}
	if have := encoding.FormatOctalWord(0x7FFF); have != "77777" {
		t.Fatalf("FormatOctalWord(0x7FFF) = %q, want %q", have, "77777")
	}
}

func TestFormatAddress(t *testing.T) {
	if have := encoding.FormatAddress(100); have != "0100" {
		t.Fatalf("FormatAddress(100) = %q, want %q", have, "0100")
	}
}
