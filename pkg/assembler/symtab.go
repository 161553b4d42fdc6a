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

// SymbolTable is the insertion-ordered name-to-label mapping. Upsert mutates
// an existing record in place rather than replacing it, so a
// reference recorded before a definition keeps its identity once the
// definition arrives.
type SymbolTable struct {
	order []string
	index map[string]*Label
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{index: make(map[string]*Label)}
}

// Find looks up a label by name.
func (t *SymbolTable) Find(name string) (*Label, bool) {
	l, ok := t.index[name]
	return l, ok
}

// Upsert ensures a record for name exists, then runs mutate against it. The
// record's identity is preserved across repeated calls: the same *Label is
// handed to every caller that upserts the same name.
func (t *SymbolTable) Upsert(name string, mutate func(*Label)) *Label {
	l, ok := t.index[name]
	if !ok {
		l = &Label{Name: name}
		t.index[name] = l
		t.order = append(t.order, name)
	}
	mutate(l)
	return l
}

// InOrder returns every label in declaration/reference order.
func (t *SymbolTable) InOrder() []*Label {
	out := make([]*Label, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.index[name])
	}
	return out
}

// Reset empties the table.
func (t *SymbolTable) Reset() {
	t.order = nil
	t.index = make(map[string]*Label)
}
