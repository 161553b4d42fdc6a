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

// Code is a member of the closed diagnostic taxonomy. Every diagnostic the
// core emits carries exactly one of these.
type Code int

const (
	FileNotFound Code = iota
	MacroNameMissing
	MacroNameInvalid
	MemoryAllocationFailed
	UnexpectedToken
	InvalidLabelName
	LabelNameUsedAsMacro
	ReservedWord
	InvalidData
	InvalidString
	InvalidInstruction
	InvalidSourceOperand
	InvalidDestOperand
	InvalidAddressMode
	LabelAlreadyDeclared
	LabelDeclaredAsExternal
	EntryLabelExternal
	LabelNotDeclared
)

// Opcode enumerates the sixteen supported mnemonics, in the order pinned by
// the opcode table (mov=0 .. stop=15).
type Opcode int

const (
	OpMov Opcode = iota
	OpCmp
	OpAdd
	OpSub
	OpNot
	OpClr
	OpLea
	OpInc
	OpDec
	OpJmp
	OpBne
	OpRed
	OpPrn
	OpJsr
	OpRts
	OpStop
	OpInvalid Opcode = -1
)

// Directive enumerates the four assembler directives.
type Directive int

const (
	DirInvalid Directive = iota
	DirData
	DirString
	DirEntry
	DirExtern
)

// AddressingMode is the tagged addressing-mode value, encoded as its own bit
// mask in the instruction header word.
type AddressingMode int

const (
	ModeUndefined        AddressingMode = 0
	ModeImmediate        AddressingMode = 1
	ModeDirect           AddressingMode = 2
	ModeIndirectRegister AddressingMode = 4
	ModeDirectRegister   AddressingMode = 8
)

// ARE is the 3-bit Absolute/Relocatable/External field carried by every word
// that references an operand.
type ARE int

const (
	AREAbsolute    ARE = 4 // 100b
	ARERelocatable ARE = 2 // 010b
	AREExternal    ARE = 1 // 001b
)

// maxLineLength is the longest source line the core tolerates without
// flagging it; the preprocessor records a warning for every longer line.
const maxLineLength = 80

var mnemonicOpcodes = map[string]Opcode{
	"mov": OpMov, "cmp": OpCmp, "add": OpAdd, "sub": OpSub,
	"not": OpNot, "clr": OpClr, "lea": OpLea, "inc": OpInc,
	"dec": OpDec, "jmp": OpJmp, "bne": OpBne, "red": OpRed,
	"prn": OpPrn, "jsr": OpJsr, "rts": OpRts, "stop": OpStop,
}

var directiveNames = map[string]Directive{
	"data": DirData, "string": DirString, "entry": DirEntry, "extern": DirExtern,
}

var twoOperandOps = map[Opcode]bool{
	OpMov: true, OpCmp: true, OpAdd: true, OpSub: true, OpLea: true,
}

var oneOperandOps = map[Opcode]bool{
	OpClr: true, OpNot: true, OpInc: true, OpDec: true, OpJmp: true,
	OpBne: true, OpRed: true, OpJsr: true, OpPrn: true,
}

var zeroOperandOps = map[Opcode]bool{
	OpRts: true, OpStop: true,
}

// IsTwoOperand reports whether op takes a source and a destination operand.
func IsTwoOperand(op Opcode) bool { return twoOperandOps[op] }

// IsOneOperand reports whether op takes a destination operand only.
func IsOneOperand(op Opcode) bool { return oneOperandOps[op] }

// IsZeroOperand reports whether op takes no operands.
func IsZeroOperand(op Opcode) bool { return zeroOperandOps[op] }
