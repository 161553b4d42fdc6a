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

import "strings"

// FirstPass encodes a whole translation unit group: IC and DC are
// continuous across every file fed to Run, so the addresses assigned depend
// on the order files were given on the command line, not just the order of
// lines within one file.
type FirstPass struct {
	diags   *Diagnostics
	symbols *SymbolTable
	macros  *MacroTable

	file string
	ic   int
	dc   int

	Instructions []*Node
	Data         []*Node
}

// NewFirstPass wires a first pass against the shared diagnostics sink,
// symbol table and macro table of the enclosing translation unit group.
func NewFirstPass(diags *Diagnostics, symbols *SymbolTable, macros *MacroTable) *FirstPass {
	return &FirstPass{diags: diags, symbols: symbols, macros: macros}
}

// Run processes one file's preprocessed lines, in source order.
func (fp *FirstPass) Run(file string, lines []string) {
	fp.file = file
	for i, line := range lines {
		fp.processLine(i+1, line)
	}
}

// stripComment removes a ';' comment and everything after it, unless the
// ';' falls inside a double-quoted string literal.
func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inString = !inString
		case ';':
			if !inString {
				return line[:i]
			}
		}
	}
	return line
}

// splitLabel extracts a leading "LABEL:" token, if present, and returns the
// remainder of the line.
func splitLabel(trimmed string) (label string, hasLabel bool, rest string) {
	fields := strings.Fields(trimmed)
	if len(fields) == 0 || !strings.HasSuffix(fields[0], ":") {
		return "", false, trimmed
	}
	label = strings.TrimSuffix(fields[0], ":")
	rest = strings.TrimSpace(strings.TrimPrefix(trimmed, fields[0]))
	return label, true, rest
}

// afterFirstToken returns s with its first whitespace-delimited token
// removed.
func afterFirstToken(s string) (first, rest string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", ""
	}
	first = fields[0]
	rest = strings.TrimSpace(strings.TrimPrefix(s, first))
	return first, rest
}

func (fp *FirstPass) processLine(lineNo int, raw string) {
	trimmed := strings.TrimSpace(stripComment(raw))
	if trimmed == "" {
		return
	}

	label, hasLabel, rest := splitLabel(trimmed)
	if rest == "" {
		if hasLabel {
			fp.diags.Add(UnexpectedToken, fp.file, lineNo, raw)
		}
		return
	}

	head, _ := afterFirstToken(rest)

	if strings.HasPrefix(head, ".") {
		fp.handleDirective(lineNo, raw, label, hasLabel, head, rest)
		return
	}

	op := LookupOpcode(head)
	if op == OpInvalid {
		fp.diags.Add(UnexpectedToken, fp.file, lineNo, raw)
		return
	}

	if hasLabel {
		fp.defineLabelIfNeeded(label, true, lineNo)
	}
	fp.handleInstruction(lineNo, raw, op, rest)
}

func (fp *FirstPass) handleDirective(lineNo int, raw, label string, hasLabel bool, head, rest string) {
	dir := LookupDirective(strings.TrimPrefix(head, "."))
	_, args := afterFirstToken(rest)

	switch dir {
	case DirData:
		if hasLabel {
			fp.defineLabelIfNeeded(label, false, lineNo)
		}
		fp.handleData(lineNo, raw, args)
	case DirString:
		if hasLabel {
			fp.defineLabelIfNeeded(label, false, lineNo)
		}
		fp.handleString(lineNo, raw, args)
	case DirEntry:
		fp.handleEntry(lineNo, args)
	case DirExtern:
		fp.handleExtern(lineNo, args)
	default:
		fp.diags.Add(UnexpectedToken, fp.file, lineNo, raw)
	}
}

// defineLabelIfNeeded upserts a definition record for a label appearing at
// the head of an instruction or data line.
func (fp *FirstPass) defineLabelIfNeeded(name string, isInstruction bool, lineNo int) {
	if IsReservedWord(name) {
		fp.diags.Add(ReservedWord, fp.file, lineNo, name)
		return
	}
	if _, ok := fp.macros.Find(name); ok {
		fp.diags.Add(LabelNameUsedAsMacro, fp.file, lineNo, name)
		return
	}
	if !ValidateLabelName(name, fp.macros) {
		fp.diags.Add(InvalidLabelName, fp.file, lineNo, name)
		return
	}

	if existing, ok := fp.symbols.Find(name); ok && existing.Declared {
		fp.diags.Add(LabelAlreadyDeclared, fp.file, lineNo, name)
		return
	}

	address := fp.ic
	if !isInstruction {
		address = fp.dc
	}
	fp.symbols.Upsert(name, func(l *Label) {
		l.Address = address
		l.IsInstruction = isInstruction
		l.Declared = true
		l.File = fp.file
		l.Line = lineNo
	})
}

func (fp *FirstPass) handleData(lineNo int, raw, args string) {
	if strings.TrimSpace(args) == "" {
		fp.diags.Add(InvalidData, fp.file, lineNo, raw)
		return
	}
	for _, part := range strings.Split(args, ",") {
		part = strings.TrimSpace(part)
		value, ok := ValidateDataEntry(part)
		if !ok {
			fp.diags.Add(InvalidData, fp.file, lineNo, part)
			continue
		}
		fp.Data = append(fp.Data, &Node{Address: fp.dc, Data: mask15(value), File: fp.file, Line: lineNo})
		fp.dc++
	}
}

func (fp *FirstPass) handleString(lineNo int, raw, args string) {
	inner, ok := ValidateStringLiteral(strings.TrimSpace(args))
	if !ok {
		fp.diags.Add(InvalidString, fp.file, lineNo, raw)
		return
	}
	for i := 0; i < len(inner); i++ {
		fp.Data = append(fp.Data, &Node{Address: fp.dc, Data: Word(inner[i]), File: fp.file, Line: lineNo})
		fp.dc++
	}
	fp.Data = append(fp.Data, &Node{Address: fp.dc, Data: 0, File: fp.file, Line: lineNo})
	fp.dc++
}

func (fp *FirstPass) handleEntry(lineNo int, args string) {
	name := strings.TrimSpace(args)
	if name == "" {
		fp.diags.Add(InvalidLabelName, fp.file, lineNo, args)
		return
	}
	if existing, ok := fp.symbols.Find(name); ok {
		if existing.External {
			fp.diags.Add(LabelDeclaredAsExternal, fp.file, lineNo, name)
			return
		}
		if existing.Entry {
			fp.diags.Add(LabelAlreadyDeclared, fp.file, lineNo, name)
			fp.symbols.Upsert(name, func(l *Label) { l.Conflicted = true })
			return
		}
		if existing.Declared && existing.File != fp.file {
			fp.diags.Add(LabelAlreadyDeclared, fp.file, lineNo, name)
			return
		}
	}
	fp.symbols.Upsert(name, func(l *Label) {
		l.Entry = true
		l.File = fp.file
		l.Line = lineNo
	})
}

func (fp *FirstPass) handleExtern(lineNo int, args string) {
	name := strings.TrimSpace(args)
	if name == "" {
		fp.diags.Add(InvalidLabelName, fp.file, lineNo, args)
		return
	}
	if existing, ok := fp.symbols.Find(name); ok {
		if existing.Entry {
			fp.diags.Add(EntryLabelExternal, fp.file, lineNo, name)
			fp.symbols.Upsert(name, func(l *Label) { l.Conflicted = true })
			return
		}
		if existing.Declared {
			fp.diags.Add(LabelAlreadyDeclared, fp.file, lineNo, name)
			return
		}
	}
	fp.symbols.Upsert(name, func(l *Label) {
		l.External = true
		l.File = fp.file
		l.Line = lineNo
	})
}

// referenceLabel ensures a symbol-table record exists for a Direct operand's
// label text without disturbing any record already present.
func (fp *FirstPass) referenceLabel(name string) {
	fp.symbols.Upsert(name, func(*Label) {})
}

func (fp *FirstPass) handleInstruction(lineNo int, raw string, op Opcode, rest string) {
	_, operandText := afterFirstToken(rest)
	operandText = strings.TrimSpace(operandText)

	var operands []string
	if operandText != "" {
		for _, o := range strings.Split(operandText, ",") {
			operands = append(operands, strings.TrimSpace(o))
		}
	}

	var src, dst *OperandInfo
	switch {
	case IsTwoOperand(op) && len(operands) >= 1:
		c := ClassifyOperand(operands[0])
		src = &c
		if len(operands) >= 2 {
			c2 := ClassifyOperand(operands[1])
			dst = &c2
		}
	case (IsOneOperand(op) || IsZeroOperand(op)) && len(operands) >= 1:
		if len(operands) > 1 {
			fp.diags.Add(UnexpectedToken, fp.file, lineNo, raw)
			return
		}
		c := ClassifyOperand(operands[0])
		dst = &c
	}

	if srcErr, dstErr := ValidateOperands(op, src, dst); srcErr != "" || dstErr != "" {
		if srcErr != "" {
			fp.diags.Add(InvalidSourceOperand, fp.file, lineNo, raw)
		}
		if dstErr != "" {
			fp.diags.Add(InvalidDestOperand, fp.file, lineNo, raw)
		}
		return
	}

	if !fp.validateOperandSyntax(src, lineNo, raw, true) {
		return
	}
	if !fp.validateOperandSyntax(dst, lineNo, raw, false) {
		return
	}

	srcMode, dstMode := ModeUndefined, ModeUndefined
	if src != nil {
		srcMode = src.Mode
	}
	if dst != nil {
		dstMode = dst.Mode
	}

	fp.Instructions = append(fp.Instructions, &Node{
		Address: fp.ic,
		Data:    encodeHeader(op, srcMode, dstMode, AREAbsolute),
		File:    fp.file,
		Line:    lineNo,
	})
	fp.ic++

	if src != nil && dst != nil && isRegisterStyle(src.Mode) && isRegisterStyle(dst.Mode) {
		fp.Instructions = append(fp.Instructions, &Node{
			Address: fp.ic,
			Data:    encodeExtraRegisterPair(src.Register(), dst.Register(), AREAbsolute),
			File:    fp.file,
			Line:    lineNo,
		})
		fp.ic++
		return
	}

	if src != nil {
		fp.emitOperandWord(*src, lineNo)
	}
	if dst != nil {
		fp.emitOperandWord(*dst, lineNo)
	}
}

func isRegisterStyle(m AddressingMode) bool {
	return m == ModeDirectRegister || m == ModeIndirectRegister
}

// validateOperandSyntax checks the per-operand content rules once an
// operand's addressing mode has already been classified and its slot
// cleared by ValidateOperands.
func (fp *FirstPass) validateOperandSyntax(op *OperandInfo, lineNo int, raw string, isSrc bool) bool {
	if op == nil {
		return true
	}

	code := InvalidDestOperand
	if isSrc {
		code = InvalidSourceOperand
	}

	switch op.Mode {
	case ModeImmediate:
		if _, ok := ValidateImmediate(op.Raw[1:]); !ok {
			fp.diags.Add(code, fp.file, lineNo, raw)
			return false
		}
	case ModeDirect:
		if !ValidateLabelName(op.Raw, fp.macros) {
			fp.diags.Add(code, fp.file, lineNo, raw)
			return false
		}
		fp.referenceLabel(op.Raw)
	}
	return true
}

// emitOperandWord appends the extra word for one operand that is not part
// of a shared register-pair word.
func (fp *FirstPass) emitOperandWord(op OperandInfo, lineNo int) {
	switch op.Mode {
	case ModeImmediate:
		value, _ := ValidateImmediate(op.Raw[1:])
		fp.Instructions = append(fp.Instructions, &Node{
			Address: fp.ic,
			Data:    encodeExtraImmediate(value, AREAbsolute),
			File:    fp.file,
			Line:    lineNo,
		})
	case ModeDirect:
		fp.Instructions = append(fp.Instructions, &Node{
			Address: fp.ic,
			Label:   op.Raw,
			File:    fp.file,
			Line:    lineNo,
		})
	case ModeDirectRegister, ModeIndirectRegister:
		fp.Instructions = append(fp.Instructions, &Node{
			Address: fp.ic,
			Data:    encodeExtraRegisterSingle(op.Register(), AREAbsolute),
			File:    fp.file,
			Line:    lineNo,
		})
	}
	fp.ic++
}

// Finish applies the end-of-first-pass address offsets: instruction-space
// addresses move up by 100, data-space addresses move up by 100+IC_final.
// It returns the final counter values.
func (fp *FirstPass) Finish() (icFinal, dcFinal int) {
	icFinal, dcFinal = fp.ic, fp.dc

	for _, n := range fp.Instructions {
		n.Address += 100
	}
	for _, n := range fp.Data {
		n.Address += 100 + icFinal
	}
	for _, l := range fp.symbols.InOrder() {
		if !l.Declared {
			continue
		}
		if l.IsInstruction {
			l.Address += 100
		} else {
			l.Address += 100 + icFinal
		}
	}

	return icFinal, dcFinal
}
