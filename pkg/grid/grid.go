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

package grid

import (
	"fmt"
	"image"
	"slices"
	"strings"
)

const (
	// TopologySquare is the topology of rectangular grids where every (x, y)
	// position within the bounds has a slot.
	TopologySquare = "square"
	// TypeCrafting is the grid type of regular crafting tables.
	TypeCrafting = "crafting"
)

// Item is an occupied slot's content.
type Item struct {
	ID    string   `json:"id" yaml:"id"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Count int      `json:"count,omitempty" yaml:"count,omitempty"`
}

// HasTag reports whether the item carries the given tag.
func (i Item) HasTag(tag string) bool {
	return slices.Contains(i.Tags, tag)
}

// String returns the textual token for the item.
func (i Item) String() string {
	if len(i.Tags) == 0 {
		return i.ID
	}
	return i.ID + "#" + strings.Join(i.Tags, "#")
}

// Snapshot is a read-only positional view over a rectangular slot layout.
type Snapshot interface {
	Width() int
	Height() int
	// SlotAt returns the item at (x, y) and true, or false when the slot is empty.
	SlotAt(x, y int) (Item, bool)
}

// Grid is an in-memory Snapshot. Slots are stored in row-major order.
type Grid struct {
	width  int
	height int
	slots  []*Item
}

// New creates a Grid of the given size from row-major slots.
// A nil entry denotes an empty slot. Items are copied.
func New(width, height int, slots []*Item) (*Grid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}
	if len(slots) != width*height {
		return nil, fmt.Errorf("grid %dx%d requires %d slots, got %d",
			width, height, width*height, len(slots))
	}

	g := Empty(width, height)
	for i, it := range slots {
		if it == nil {
			continue
		}
		c := cloneItem(*it)
		g.slots[i] = &c
	}
	return g, nil
}

// Empty creates a Grid of the given size with every slot empty.
// Negative dimensions are treated as zero.
func Empty(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	return &Grid{
		width:  width,
		height: height,
		slots:  make([]*Item, width*height),
	}
}

// Width implements Snapshot.
func (g *Grid) Width() int { return g.width }

// Height implements Snapshot.
func (g *Grid) Height() int { return g.height }

// Size returns the total number of slots.
func (g *Grid) Size() int { return len(g.slots) }

// SlotAt implements Snapshot.
func (g *Grid) SlotAt(x, y int) (Item, bool) {
	it := g.slots[y*g.width+x]
	if it == nil {
		return Item{}, false
	}
	return *it, true
}

// Set places a copy of item at (x, y). A nil item empties the slot.
func (g *Grid) Set(x, y int, item *Item) error {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return fmt.Errorf("slot (%d,%d) outside %dx%d grid", x, y, g.width, g.height)
	}
	if item == nil {
		g.slots[y*g.width+x] = nil
		return nil
	}
	c := cloneItem(*item)
	g.slots[y*g.width+x] = &c
	return nil
}

// Rows renders the grid as textual rows accepted by Parse.
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.height)
	for y := 0; y < g.height; y++ {
		tokens := make([]string, g.width)
		for x := 0; x < g.width; x++ {
			if it, ok := g.SlotAt(x, y); ok {
				tokens[x] = it.String()
			} else {
				tokens[x] = EmptyToken
			}
		}
		rows = append(rows, strings.Join(tokens, " "))
	}
	return rows
}

// String implements fmt.Stringer.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// CountFilled returns the number of occupied slots in s.
func CountFilled(s Snapshot) int {
	n := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if _, ok := s.SlotAt(x, y); ok {
				n++
			}
		}
	}
	return n
}

// FirstNonEmpty returns the first occupied slot's item in row-major order.
// It reports false if and only if s is completely empty.
func FirstNonEmpty(s Snapshot) (Item, bool) {
	p, ok := FirstNonEmptyPosition(s)
	if !ok {
		return Item{}, false
	}
	return s.SlotAt(p.X, p.Y)
}

// FirstNonEmptyPosition returns the position of the first occupied slot in
// row-major order.
func FirstNonEmptyPosition(s Snapshot) (image.Point, bool) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if _, ok := s.SlotAt(x, y); ok {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

func cloneItem(it Item) Item {
	it.Tags = slices.Clone(it.Tags)
	return it
}
