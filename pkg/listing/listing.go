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

// Package listing builds a human-readable, address-annotated view of an
// assembled translation unit group, for the -S flag of cmd/w15asm.
package listing

import (
	"io"

	"github.com/k0kubun/pp/v3"

	"github.com/rsilvestre/w15asm/pkg/assembler"
	"github.com/rsilvestre/w15asm/pkg/encoding"
)

// SymbolEntry is one row of the symbol-table section of a listing.
type SymbolEntry struct {
	Name     string
	Address  int
	Entry    bool
	External bool
}

// LineEntry is one row of the source-correlated section of a listing: one
// per macro-expanded source line, with the address and octal content of the
// first word that line produced. Address and Octal are both blank when the
// line emitted no word (a comment, a blank line, a bare label, `.entry` or
// `.extern`). Macro definition blocks are removed by the preprocessor, so
// they get no row at all.
type LineEntry struct {
	File    string
	LineNo  int
	Address string
	Octal   string
	Source  string
}

// Listing is a fully-built, printable view of one Result. Unlike the
// teacher's runtime PrintSource, it correlates against the encoder's
// already-resolved word stream rather than a live program counter, so it
// needs no running machine and no seek-by-symbol-offset lookup.
type Listing struct {
	BaseName string
	Symbols  []SymbolEntry
	Lines    []LineEntry
}

type fileLine struct {
	file string
	line int
}

// Build assembles a Listing from a completed Result, correlating every
// macro-expanded source line it kept against the first instruction or data
// word assembled from that line.
func Build(result *assembler.Result) *Listing {
	l := &Listing{BaseName: result.BaseName}

	for _, lbl := range result.Symbols.InOrder() {
		l.Symbols = append(l.Symbols, SymbolEntry{
			Name:     lbl.Name,
			Address:  lbl.Address,
			Entry:    lbl.Entry,
			External: lbl.External,
		})
	}

	firstWord := indexFirstWordPerLine(result.Instructions, result.Data)

	for _, fl := range result.Sources {
		for i, text := range fl.Lines {
			lineNo := i + 1
			entry := LineEntry{File: fl.File, LineNo: lineNo, Source: text}
			if n, ok := firstWord[fileLine{fl.File, lineNo}]; ok {
				entry.Address = encoding.FormatAddress(n.Address)
				entry.Octal = encoding.FormatOctalWord(uint16(n.Data))
			}
			l.Lines = append(l.Lines, entry)
		}
	}

	return l
}

// indexFirstWordPerLine maps each (file, line) to the earliest-emitted word
// from that line, checking instructions ahead of data so a line that
// somehow produced both is reported by its instruction word.
func indexFirstWordPerLine(instructions, data []*assembler.Node) map[fileLine]*assembler.Node {
	idx := make(map[fileLine]*assembler.Node)
	for _, n := range instructions {
		key := fileLine{n.File, n.Line}
		if _, ok := idx[key]; !ok {
			idx[key] = n
		}
	}
	for _, n := range data {
		key := fileLine{n.File, n.Line}
		if _, ok := idx[key]; !ok {
			idx[key] = n
		}
	}
	return idx
}

// Print renders the listing to w using the pack's pretty-printer.
func Print(w io.Writer, l *Listing) {
	pp.Fprintln(w, l)
}
