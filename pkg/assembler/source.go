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
	"bufio"
	"os"
)

// SourceFile holds one input file's text as 1-based-numbered logical lines.
// The terminating newline is stripped; other whitespace is preserved
// verbatim.
type SourceFile struct {
	Name  string
	lines []string
}

// ReadSource opens path and reads it line by line.
func ReadSource(path string) (*SourceFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sf := &SourceFile{Name: path}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 256), 64*1024)
	for scanner.Scan() {
		sf.lines = append(sf.lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return sf, nil
}

// Line returns the 1-based nth line of the file.
func (sf *SourceFile) Line(n int) (string, bool) {
	if n < 1 || n > len(sf.lines) {
		return "", false
	}
	return sf.lines[n-1], true
}

// LineCount returns the number of logical lines in the file.
func (sf *SourceFile) LineCount() int {
	return len(sf.lines)
}

// Lines returns every logical line, in source order.
func (sf *SourceFile) Lines() []string {
	return sf.lines
}
