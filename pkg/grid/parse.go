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
	"errors"
	"fmt"
	"strings"
)

const (
	// EmptyToken is the token Rows emits for empty slots.
	EmptyToken = "_"
	// tagSeparator splits an item token into its ID and tags.
	tagSeparator = "#"
)

// ErrRaggedRows is returned when textual rows have different token counts.
var ErrRaggedRows = errors.New("grid rows have different widths")

// Spec is the serializable description of a grid.
// Width and Height are optional; when set they must agree with Rows.
type Spec struct {
	Width  int      `json:"width,omitempty" yaml:"width,omitempty"`
	Height int      `json:"height,omitempty" yaml:"height,omitempty"`
	Rows   []string `json:"rows" yaml:"rows"`
}

// Build parses the spec into a Grid.
func (s *Spec) Build() (*Grid, error) {
	if s == nil {
		return nil, errors.New("grid spec is nil")
	}

	g, err := Parse(s.Rows)
	if err != nil {
		return nil, err
	}

	if s.Width != 0 && s.Width != g.Width() {
		return nil, fmt.Errorf("declared width %d does not match rows width %d", s.Width, g.Width())
	}
	if s.Height != 0 && s.Height != g.Height() {
		return nil, fmt.Errorf("declared height %d does not match %d rows", s.Height, g.Height())
	}

	return g, nil
}

// Parse builds a Grid from textual rows. See the package documentation for
// the token format.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return Empty(0, 0), nil
	}

	tokens := make([][]string, len(rows))
	for i, row := range rows {
		tokens[i] = strings.Fields(row)
	}

	width := len(tokens[0])
	g := Empty(width, len(rows))
	for y, row := range tokens {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d slots, expected %d", ErrRaggedRows, y, len(row), width)
		}
		for x, tok := range row {
			it, ok, err := ParseToken(tok)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", y, x, err)
			}
			if !ok {
				continue
			}
			g.slots[y*width+x] = &it
		}
	}

	return g, nil
}

// ParseToken parses a single slot token. It reports false for empty tokens.
func ParseToken(tok string) (Item, bool, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" || tok == EmptyToken || tok == "-" {
		return Item{}, false, nil
	}

	parts := strings.Split(tok, tagSeparator)
	if parts[0] == "" {
		return Item{}, false, fmt.Errorf("token %q has no item id", tok)
	}

	it := Item{ID: parts[0], Count: 1}
	for _, tag := range parts[1:] {
		if tag == "" {
			return Item{}, false, fmt.Errorf("token %q has an empty tag", tok)
		}
		it.Tags = append(it.Tags, tag)
	}
	return it, true, nil
}
