// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package shape

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/NVIDIA/craftgrid/pkg/ingredient"
)

// BlankSymbol is the pattern rune denoting a blank cell.
const BlankSymbol = '-'

// Cell is a single pattern position: Blank, or an index into the recipe's
// ingredient list.
type Cell int

// Blank is the Cell requiring an empty slot.
const Blank Cell = -1

// IsBlank reports whether c is Blank.
func (c Cell) IsBlank() bool { return c < 0 }

// renderSymbols is the alphabet String uses for ingredient indexes.
const renderSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Pattern is an immutable rectangular matrix of cells in row-major order.
type Pattern struct {
	width  int
	height int
	cells  []Cell
}

// Parse converts textual rows into a Pattern, binding each distinct symbol to
// the next unused entry of ingredients. Surplus ingredients are ignored.
func Parse(rows []string, ingredients []ingredient.Ingredient) (*Pattern, error) {
	malformed := func(err error, detail string, symbols int) error {
		return &MalformedPatternError{
			Rows:        slices.Clone(rows),
			Symbols:     symbols,
			Ingredients: len(ingredients),
			Detail:      detail,
			Err:         err,
		}
	}

	if len(rows) == 0 {
		return nil, malformed(ErrEmptyPattern, "no rows", 0)
	}

	width := utf8.RuneCountInString(rows[0])
	for i, row := range rows[1:] {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, malformed(ErrNonRectangular,
				fmt.Sprintf("row %d has %d cells, row 0 has %d", i+1, n, width), countSymbols(rows))
		}
	}
	if width == 0 {
		return nil, malformed(ErrEmptyPattern, "no columns", 0)
	}

	symbols := countSymbols(rows)
	if symbols > len(ingredients) {
		return nil, malformed(ErrMissingIngredient,
			fmt.Sprintf("%d symbols but only %d ingredients", symbols, len(ingredients)), symbols)
	}

	p := &Pattern{
		width:  width,
		height: len(rows),
		cells:  make([]Cell, 0, width*len(rows)),
	}
	bound := make(map[rune]Cell, symbols)
	for _, row := range rows {
		for _, r := range row {
			if r == BlankSymbol {
				p.cells = append(p.cells, Blank)
				continue
			}
			c, ok := bound[r]
			if !ok {
				c = Cell(len(bound))
				if ingredients[c] == nil {
					return nil, malformed(ErrNilIngredient,
						fmt.Sprintf("symbol %q -> ingredient %d", r, c), symbols)
				}
				bound[r] = c
			}
			p.cells = append(p.cells, c)
		}
	}

	return p, nil
}

func countSymbols(rows []string) int {
	seen := make(map[rune]struct{})
	for _, row := range rows {
		for _, r := range row {
			if r != BlankSymbol {
				seen[r] = struct{}{}
			}
		}
	}
	return len(seen)
}

// Width returns the number of columns.
func (p *Pattern) Width() int { return p.width }

// Height returns the number of rows.
func (p *Pattern) Height() int { return p.height }

// Cell returns the cell at column x of row y.
func (p *Pattern) Cell(x, y int) Cell {
	return p.cells[y*p.width+x]
}

// Symbols returns the number of distinct ingredient indexes in the pattern.
func (p *Pattern) Symbols() int {
	n := 0
	for _, c := range p.cells {
		if int(c) >= n {
			n = int(c) + 1
		}
	}
	return n
}

// Mirror returns the pattern reflected about its vertical axis: each row is
// reversed, row order is unchanged.
func (p *Pattern) Mirror() *Pattern {
	m := &Pattern{
		width:  p.width,
		height: p.height,
		cells:  make([]Cell, len(p.cells)),
	}
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			m.cells[y*p.width+x] = p.cells[y*p.width+(p.width-1-x)]
		}
	}
	return m
}

// Equal reports whether p and o have the same size and cells.
func (p *Pattern) Equal(o *Pattern) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.width == o.width && p.height == o.height && slices.Equal(p.cells, o.cells)
}

// Rows renders the pattern in canonical form: ingredient index i is written
// as the i-th rune of A..Z, a..z, 0..9 and blanks as BlankSymbol.
func (p *Pattern) Rows() []string {
	rows := make([]string, 0, p.height)
	for y := 0; y < p.height; y++ {
		var sb strings.Builder
		for x := 0; x < p.width; x++ {
			sb.WriteRune(symbolFor(p.Cell(x, y)))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// String implements fmt.Stringer. Rows are separated by "/".
func (p *Pattern) String() string {
	return strings.Join(p.Rows(), "/")
}

func symbolFor(c Cell) rune {
	switch {
	case c.IsBlank():
		return BlankSymbol
	case int(c) < len(renderSymbols):
		return rune(renderSymbols[c])
	default:
		return '?'
	}
}
