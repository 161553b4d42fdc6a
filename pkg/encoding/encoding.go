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

package encoding

import "fmt"

// Mask15 truncates value to the low 15 bits of a machine word.
func Mask15(value int) uint16 {
	return uint16(value) & 0x7FFF
}

// Mask12 truncates value to a 12-bit operand payload.
func Mask12(value int) uint16 {
	return uint16(value) & 0x0FFF
}

// FormatOctalWord renders a word as the 5-digit zero-padded octal field
// used by the object file.
func FormatOctalWord(word uint16) string {
	return fmt.Sprintf("%05o", word&0x7FFF)
}

// FormatAddress renders an address as the 4-digit zero-padded decimal field
// used by the object file.
func FormatAddress(address int) string {
	return fmt.Sprintf("%04d", address)
}
