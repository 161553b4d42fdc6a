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

import "github.com/rsilvestre/w15asm/pkg/encoding"

// encodeHeader builds an instruction header word: opcode in bits 11-14,
// source mode in bits 7-10, destination mode in bits 3-6, ARE in bits 0-2.
func encodeHeader(op Opcode, src, dst AddressingMode, are ARE) Word {
	return Word(op)<<11 | Word(src)<<7 | Word(dst)<<3 | Word(are)
}

// mask12 truncates value to its low 12 bits, preserving two's-complement
// representation for negative inputs.
func mask12(value int) Word {
	return Word(encoding.Mask12(value))
}

// mask15 truncates value to a full 15-bit word, preserving two's-complement
// representation for negative inputs. Unlike the operand extra-word
// encoders, data words carry no ARE field: they are literal storage.
func mask15(value int) Word {
	return Word(encoding.Mask15(value))
}

// encodeExtraImmediate builds an operand extra word carrying a literal
// value in bits 3-14.
func encodeExtraImmediate(value int, are ARE) Word {
	return mask12(value)<<3 | Word(are)
}

// encodeExtraAddress builds an operand extra word carrying a resolved label
// address in bits 3-14. It is identical in shape to encodeExtraImmediate;
// the two are kept distinct because their callers reason about different
// inputs (a signed literal vs. a non-negative word address).
func encodeExtraAddress(address int, are ARE) Word {
	return mask12(address)<<3 | Word(are)
}

// encodeExtraRegisterSingle builds an operand extra word for a lone register
// operand (DirectRegister or IndirectRegister used alone): the register
// number occupies bits 6-8.
func encodeExtraRegisterSingle(reg int, are ARE) Word {
	return Word(reg&0x7)<<6 | Word(are)
}

// encodeExtraRegisterPair builds the single shared extra word used when both
// the source and destination operands are register-style: source in bits
// 3-5, destination in bits 6-8.
func encodeExtraRegisterPair(srcReg, dstReg int, are ARE) Word {
	return Word(srcReg&0x7)<<3 | Word(dstReg&0x7)<<6 | Word(are)
}
