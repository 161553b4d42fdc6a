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
	"os"
	"path/filepath"
	"strings"

	"github.com/rsilvestre/w15asm/pkg/encoding"
)

// sanitizeStem replaces the characters the base-name rule singles out with
// underscores.
func sanitizeStem(stem string) string {
	r := strings.NewReplacer(" ", "_", "/", "_", `\`, "_", ".", "_")
	return r.Replace(stem)
}

// stem returns the filename component of path with its extension removed.
func stem(path string) string {
	base := filepath.Base(path)
	if i := strings.LastIndex(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}

// BaseName computes the artifact base name for a translation unit group:
// every input's stem, sanitized and joined with '_'.
func BaseName(paths []string) string {
	parts := make([]string, len(paths))
	for i, p := range paths {
		parts[i] = sanitizeStem(stem(p))
	}
	return strings.Join(parts, "_")
}

// Emitter writes the three artifact files for a completed, error-free
// translation unit group.
type Emitter struct {
	BaseName string
}

// NewEmitter returns an emitter that writes files named base.ob/.ent/.ext.
func NewEmitter(base string) *Emitter {
	return &Emitter{BaseName: base}
}

// WriteObject writes the .ob file: the IC/DC header line followed by every
// instruction word, then every data word, in declaration order.
func (e *Emitter) WriteObject(instructions, data []*Node, icFinal, dcFinal int) error {
	f, err := os.Create(e.BaseName + ".ob")
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "   %d %d\n", icFinal, dcFinal); err != nil {
		return err
	}
	for _, n := range instructions {
		if _, err := fmt.Fprintf(f, "%s %s\n", encoding.FormatAddress(n.Address), encoding.FormatOctalWord(uint16(n.Data))); err != nil {
			return err
		}
	}
	for _, n := range data {
		if _, err := fmt.Fprintf(f, "%s %s\n", encoding.FormatAddress(n.Address), encoding.FormatOctalWord(uint16(n.Data))); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntries writes the .ent file: one line per entry label with its
// final decimal address. The file is omitted entirely when the group
// declares no entries.
func (e *Emitter) WriteEntries(symbols *SymbolTable) error {
	var entries []*Label
	for _, l := range symbols.InOrder() {
		if l.Entry {
			entries = append(entries, l)
		}
	}
	if len(entries) == 0 {
		return nil
	}

	f, err := os.Create(e.BaseName + ".ent")
	if err != nil {
		return err
	}
	defer f.Close()

	for _, l := range entries {
		if _, err := fmt.Fprintf(f, "%s %03d\n", l.Name, l.Address); err != nil {
			return err
		}
	}
	return nil
}

// WriteExternals writes the .ext file: one line per use site of an external
// label. The file is omitted entirely when the group uses no externals.
func (e *Emitter) WriteExternals(uses []externalUse) error {
	if len(uses) == 0 {
		return nil
	}

	f, err := os.Create(e.BaseName + ".ext")
	if err != nil {
		return err
	}
	defer f.Close()

	for _, u := range uses {
		if _, err := fmt.Fprintf(f, "%s %s\n", u.Name, encoding.FormatAddress(u.Address)); err != nil {
			return err
		}
	}
	return nil
}
