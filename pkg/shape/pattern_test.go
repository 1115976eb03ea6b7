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
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/NVIDIA/craftgrid/pkg/ingredient"
)

func anyIngredients(n int) []ingredient.Ingredient {
	out := make([]ingredient.Ingredient, n)
	for i := range out {
		out[i] = ingredient.Any()
	}
	return out
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		rows        []string
		ingredients int
		wantRows    []string
		wantW       int
		wantH       int
		wantErr     error
	}{
		{name: "diagonal", rows: []string{"A-", "-A"}, ingredients: 1, wantRows: []string{"A-", "-A"}, wantW: 2, wantH: 2},
		{name: "two symbols", rows: []string{"AB", "BA"}, ingredients: 2, wantRows: []string{"AB", "BA"}, wantW: 2, wantH: 2},
		{name: "binding by first appearance", rows: []string{"x#", "#x"}, ingredients: 2, wantRows: []string{"AB", "BA"}, wantW: 2, wantH: 2},
		{name: "single row", rows: []string{"A-A"}, ingredients: 1, wantRows: []string{"A-A"}, wantW: 3, wantH: 1},
		{name: "all blank", rows: []string{"--", "--"}, ingredients: 0, wantRows: []string{"--", "--"}, wantW: 2, wantH: 2},
		{name: "surplus ingredients", rows: []string{"A"}, ingredients: 3, wantRows: []string{"A"}, wantW: 1, wantH: 1},
		{name: "multibyte runes", rows: []string{"é-", "-é"}, ingredients: 1, wantRows: []string{"A-", "-A"}, wantW: 2, wantH: 2},
		{name: "no rows", rows: nil, ingredients: 1, wantErr: ErrEmptyPattern},
		{name: "empty rows", rows: []string{"", ""}, ingredients: 1, wantErr: ErrEmptyPattern},
		{name: "ragged", rows: []string{"AA", "A"}, ingredients: 1, wantErr: ErrNonRectangular},
		{name: "missing ingredient", rows: []string{"AB"}, ingredients: 1, wantErr: ErrMissingIngredient},
		{name: "no ingredients", rows: []string{"A"}, ingredients: 0, wantErr: ErrMissingIngredient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.rows, anyIngredients(tt.ingredients))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				var mpe *MalformedPatternError
				if !errors.As(err, &mpe) {
					t.Fatalf("Parse() error type = %T, want *MalformedPatternError", err)
				}
				if mpe.Ingredients != tt.ingredients {
					t.Errorf("Ingredients = %d, want %d", mpe.Ingredients, tt.ingredients)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if p.Width() != tt.wantW || p.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", p.Width(), p.Height(), tt.wantW, tt.wantH)
			}
			if diff := cmp.Diff(tt.wantRows, p.Rows()); diff != "" {
				t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMalformedDetails(t *testing.T) {
	rows := []string{"AB", "CA"}
	_, err := Parse(rows, anyIngredients(2))

	var mpe *MalformedPatternError
	if !errors.As(err, &mpe) {
		t.Fatalf("expected *MalformedPatternError, got %v", err)
	}
	if mpe.Symbols != 3 || mpe.Ingredients != 2 {
		t.Errorf("Symbols/Ingredients = %d/%d, want 3/2", mpe.Symbols, mpe.Ingredients)
	}
	if diff := cmp.Diff(rows, mpe.Rows); diff != "" {
		t.Errorf("Rows mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), `"AB"`) {
		t.Errorf("error %q does not include the pattern text", err)
	}

	// The error keeps its own copy of the rows.
	rows[0] = "ZZ"
	if mpe.Rows[0] != "AB" {
		t.Errorf("error rows aliased caller slice: %q", mpe.Rows)
	}
}

func TestParseNilIngredient(t *testing.T) {
	_, err := Parse([]string{"AB"}, []ingredient.Ingredient{ingredient.Any(), nil})
	if !errors.Is(err, ErrNilIngredient) {
		t.Fatalf("Parse() error = %v, want ErrNilIngredient", err)
	}

	// Unreferenced surplus entries may be nil.
	if _, err := Parse([]string{"A"}, []ingredient.Ingredient{ingredient.Any(), nil}); err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}
}

func TestPatternCells(t *testing.T) {
	p, err := Parse([]string{"AB-", "-BA"}, anyIngredients(2))
	if err != nil {
		t.Fatal(err)
	}

	want := [][]Cell{
		{0, 1, Blank},
		{Blank, 1, 0},
	}
	for y, row := range want {
		for x, c := range row {
			if got := p.Cell(x, y); got != c {
				t.Errorf("Cell(%d,%d) = %d, want %d", x, y, got, c)
			}
		}
	}
	if p.Symbols() != 2 {
		t.Errorf("Symbols() = %d, want 2", p.Symbols())
	}
	if p.String() != "AB-/-BA" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestPatternMirror(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want []string
	}{
		{name: "diagonal", rows: []string{"A-", "-A"}, want: []string{"-A", "A-"}},
		{name: "two symbols", rows: []string{"AB", "BA"}, want: []string{"BA", "AB"}},
		{name: "asymmetric", rows: []string{"AAB", "--B"}, want: []string{"BAA", "B--"}},
		{name: "palindrome", rows: []string{"ABA"}, want: []string{"ABA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.rows, anyIngredients(2))
			if err != nil {
				t.Fatal(err)
			}
			m := p.Mirror()
			if diff := cmp.Diff(tt.want, m.Rows()); diff != "" {
				t.Errorf("Mirror() mismatch (-want +got):\n%s", diff)
			}
			if !m.Mirror().Equal(p) {
				t.Error("mirroring twice should restore the pattern")
			}
		})
	}
}
