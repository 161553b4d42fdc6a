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
	"strings"
	"unicode"
)

// Preprocessor captures macro definitions in a first phase, then produces a
// best-effort expanded source text in a second phase. It creates one
// MacroTable per preprocessing run and exposes it as Macros.
type Preprocessor struct {
	Macros   *MacroTable
	Warnings []string

	diags *Diagnostics
}

// NewPreprocessor returns a preprocessor that reports malformed macro
// definitions to diags and keeps on running instead of aborting.
func NewPreprocessor(diags *Diagnostics) *Preprocessor {
	return &Preprocessor{Macros: NewMacroTable(), diags: diags}
}

// Expand runs both phases over file's lines and returns the expanded text.
func (p *Preprocessor) Expand(file string, lines []string) []string {
	p.checkLineLengths(file, lines)
	p.captureDefinitions(file, lines)
	return p.expandCalls(lines)
}

func (p *Preprocessor) checkLineLengths(file string, lines []string) {
	for i, line := range lines {
		if len(line) > maxLineLength {
			p.Warnings = append(p.Warnings, fmt.Sprintf(
				"%s:%d: source line exceeds %d characters", file, i+1, maxLineLength,
			))
		}
	}
}

// macroKeyword inspects a line for a leading "macr" token, reporting whether
// it is a definition header and, if so, whether the name was omitted.
func macroKeyword(line string) (name string, isDef bool, nameMissing bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != "macr" {
		return "", false, false
	}
	if len(fields) < 2 {
		return "", true, true
	}
	return fields[1], true, false
}

func isEndMacro(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "endmacr")
}

// validMacroName reports whether name can legally name a macro: it must
// start with a letter and must not collide with a mnemonic, directive, or
// the macro keywords themselves.
func (p *Preprocessor) validMacroName(name string) bool {
	if name == "" || !unicode.IsLetter(rune(name[0])) {
		return false
	}
	if name == "macr" || name == "endmacr" || IsReservedWord(name) {
		return false
	}
	return !isRegisterName(name)
}

func skipMacroBody(lines []string, i int) int {
	for i < len(lines) && !isEndMacro(lines[i]) {
		i++
	}
	if i < len(lines) {
		i++ // consume the endmacr line itself
	}
	return i
}

// captureDefinitions is phase 1: it walks the file once, adding every
// well-formed "macr NAME ... endmacr" block to p.Macros.
func (p *Preprocessor) captureDefinitions(file string, lines []string) {
	i := 0
	for i < len(lines) {
		name, isDef, missing := macroKeyword(lines[i])
		lineNo := i + 1

		if !isDef {
			i++
			continue
		}

		if missing {
			p.diags.Add(MacroNameMissing, file, lineNo, "")
			i = skipMacroBody(lines, i+1)
			continue
		}

		if !p.validMacroName(name) {
			p.diags.Add(MacroNameInvalid, file, lineNo, name)
			i = skipMacroBody(lines, i+1)
			continue
		}

		i++
		var body []string
		for i < len(lines) && !isEndMacro(lines[i]) {
			body = append(body, lines[i])
			i++
		}
		if i < len(lines) {
			i++ // consume endmacr
		}
		p.Macros.Add(name, body)
	}
}

// expandCalls is phase 2: it walks the file again, suppressing macro
// definition blocks and substituting call sites with their captured bodies.
func (p *Preprocessor) expandCalls(lines []string) []string {
	var out []string
	insideDef := false

	for _, line := range lines {
		if insideDef {
			if isEndMacro(line) {
				insideDef = false
			}
			continue
		}

		if _, isDef, _ := macroKeyword(line); isDef {
			insideDef = true
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, "")
			continue
		}

		first := strings.Fields(trimmed)[0]
		if m, ok := p.Macros.Find(first); ok {
			out = append(out, m.Body...)
			continue
		}

		out = append(out, line)
	}

	return out
}
