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
	"image"
	"slices"

	"github.com/NVIDIA/craftgrid/pkg/grid"
	"github.com/NVIDIA/craftgrid/pkg/ingredient"
)

// Recipe is a parsed shaped recipe ready for matching.
type Recipe struct {
	pattern     *Pattern
	mirror      *Pattern
	ingredients []ingredient.Ingredient
	mirrored    bool
}

// Placement is where a Recipe matched: the pattern's top-left corner in grid
// coordinates and whether the mirrored orientation was used.
type Placement struct {
	Offset   image.Point `json:"offset" yaml:"offset"`
	Mirrored bool        `json:"mirrored" yaml:"mirrored"`
}

// Build parses rows against ingredients and returns a Recipe. When mirrored
// is true the recipe also accepts the horizontally flipped pattern.
func Build(rows []string, mirrored bool, ingredients ...ingredient.Ingredient) (*Recipe, error) {
	ingredients = slices.Clone(ingredients)

	p, err := Parse(rows, ingredients)
	if err != nil {
		return nil, err
	}

	r := &Recipe{
		pattern:     p,
		ingredients: ingredients,
		mirrored:    mirrored,
	}
	if mirrored {
		r.mirror = p.Mirror()
	}
	return r, nil
}

// Pattern returns the literal pattern.
func (r *Recipe) Pattern() *Pattern { return r.pattern }

// Mirrored reports whether the mirrored orientation is accepted.
func (r *Recipe) Mirrored() bool { return r.mirrored }

// Ingredients returns a copy of the ingredient list in binding order.
func (r *Recipe) Ingredients() []ingredient.Ingredient {
	return slices.Clone(r.ingredients)
}

// Matches reports whether g matches the recipe at any offset.
func (r *Recipe) Matches(g grid.Snapshot) bool {
	_, ok := r.Match(g)
	return ok
}

// Match returns the first placement at which g matches the recipe. The
// literal orientation is tried before the mirrored one, and offsets are
// visited row by row.
func (r *Recipe) Match(g grid.Snapshot) (Placement, bool) {
	if g == nil {
		return Placement{}, false
	}

	w, h := g.Width(), g.Height()
	if r.pattern.width > w || r.pattern.height > h {
		return Placement{}, false
	}

	if off, ok := search(r.pattern, r.ingredients, g); ok {
		return Placement{Offset: off}, true
	}
	if r.mirrored {
		if off, ok := search(r.mirror, r.ingredients, g); ok {
			return Placement{Offset: off, Mirrored: true}, true
		}
	}
	return Placement{}, false
}

func search(p *Pattern, ingredients []ingredient.Ingredient, g grid.Snapshot) (image.Point, bool) {
	for dy := 0; dy <= g.Height()-p.height; dy++ {
		for dx := 0; dx <= g.Width()-p.width; dx++ {
			if MatchAt(p, ingredients, g, dx, dy) {
				return image.Pt(dx, dy), true
			}
		}
	}
	return image.Point{}, false
}

// MatchAt reports whether g matches p with the pattern's top-left corner at
// (dx, dy). Every slot of g is checked: slots outside the footprint must be
// empty. Offsets that push the pattern outside g never match.
func MatchAt(p *Pattern, ingredients []ingredient.Ingredient, g grid.Snapshot, dx, dy int) bool {
	w, h := g.Width(), g.Height()
	if dx < 0 || dy < 0 || dx+p.width > w || dy+p.height > h {
		return false
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			item, occupied := g.SlotAt(x, y)

			px, py := x-dx, y-dy
			if px < 0 || py < 0 || px >= p.width || py >= p.height {
				if occupied {
					return false
				}
				continue
			}

			c := p.Cell(px, py)
			if c.IsBlank() {
				if occupied {
					return false
				}
				continue
			}
			if !occupied || int(c) >= len(ingredients) || !ingredients[c].Test(item) {
				return false
			}
		}
	}
	return true
}
