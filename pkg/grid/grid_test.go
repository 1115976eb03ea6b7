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
	"image"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		rows       []string
		wantWidth  int
		wantHeight int
		wantFilled int
		wantErr    error
	}{
		{
			name:       "empty input",
			rows:       nil,
			wantWidth:  0,
			wantHeight: 0,
		},
		{
			name:       "two by two diagonal",
			rows:       []string{"x _", "_ x"},
			wantWidth:  2,
			wantHeight: 2,
			wantFilled: 2,
		},
		{
			name:       "dash is empty too",
			rows:       []string{"- - -", "a b -"},
			wantWidth:  3,
			wantHeight: 2,
			wantFilled: 2,
		},
		{
			name:    "ragged rows",
			rows:    []string{"a b", "a"},
			wantErr: ErrRaggedRows,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Parse(tt.rows)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if g.Width() != tt.wantWidth || g.Height() != tt.wantHeight {
				t.Errorf("size = %dx%d, want %dx%d", g.Width(), g.Height(), tt.wantWidth, tt.wantHeight)
			}
			if got := CountFilled(g); got != tt.wantFilled {
				t.Errorf("CountFilled() = %d, want %d", got, tt.wantFilled)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	it, ok, err := ParseToken("oak_planks#planks#wood")
	if err != nil || !ok {
		t.Fatalf("ParseToken() = %v, %v", ok, err)
	}
	if it.ID != "oak_planks" {
		t.Errorf("ID = %q, want oak_planks", it.ID)
	}
	if !it.HasTag("planks") || !it.HasTag("wood") {
		t.Errorf("expected tags planks and wood, got %v", it.Tags)
	}
	if it.String() != "oak_planks#planks#wood" {
		t.Errorf("String() = %q", it.String())
	}

	for _, bad := range []string{"#tag", "id##x"} {
		if _, _, err := ParseToken(bad); err == nil {
			t.Errorf("ParseToken(%q) expected error", bad)
		}
	}
}

func TestNew(t *testing.T) {
	stick := &Item{ID: "stick"}

	if _, err := New(2, 2, []*Item{stick}); err == nil {
		t.Fatal("expected slot count mismatch error")
	}
	if _, err := New(-1, 2, nil); err == nil {
		t.Fatal("expected invalid size error")
	}

	g, err := New(2, 1, []*Item{nil, stick})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// mutating the source must not leak into the grid
	stick.ID = "changed"
	it, ok := g.SlotAt(1, 0)
	if !ok || it.ID != "stick" {
		t.Errorf("SlotAt(1,0) = %v, %v; want stick", it, ok)
	}
	if _, ok := g.SlotAt(0, 0); ok {
		t.Error("SlotAt(0,0) expected empty")
	}
	if g.Size() != 2 {
		t.Errorf("Size() = %d, want 2", g.Size())
	}
}

func TestSet(t *testing.T) {
	g := Empty(3, 3)
	if err := g.Set(3, 0, &Item{ID: "x"}); err == nil {
		t.Error("expected out of bounds error")
	}
	if err := g.Set(1, 2, &Item{ID: "x"}); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if CountFilled(g) != 1 {
		t.Errorf("CountFilled() = %d, want 1", CountFilled(g))
	}
	if err := g.Set(1, 2, nil); err != nil {
		t.Fatalf("Set(nil) error: %v", err)
	}
	if CountFilled(g) != 0 {
		t.Errorf("CountFilled() = %d, want 0", CountFilled(g))
	}
}

func TestFirstNonEmpty(t *testing.T) {
	g, err := Parse([]string{"_ _ _", "_ _ a", "b _ _"})
	if err != nil {
		t.Fatal(err)
	}

	p, ok := FirstNonEmptyPosition(g)
	if !ok || p != image.Pt(2, 1) {
		t.Errorf("FirstNonEmptyPosition() = %v, %v; want (2,1)", p, ok)
	}
	it, ok := FirstNonEmpty(g)
	if !ok || it.ID != "a" {
		t.Errorf("FirstNonEmpty() = %v, %v; want a", it, ok)
	}

	if _, ok := FirstNonEmpty(Empty(3, 3)); ok {
		t.Error("FirstNonEmpty() on empty grid should report false")
	}
}

func TestRowsRoundTrip(t *testing.T) {
	rows := []string{"a#t _", "_ b"}
	g, err := Parse(rows)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(g.Rows())
	if err != nil {
		t.Fatal(err)
	}
	if again.String() != g.String() {
		t.Errorf("round trip mismatch:\n%s\n---\n%s", again, g)
	}
}

func TestSpecBuild(t *testing.T) {
	s := &Spec{Width: 2, Height: 1, Rows: []string{"a b"}}
	if _, err := s.Build(); err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	s.Width = 3
	if _, err := s.Build(); err == nil {
		t.Error("expected width mismatch error")
	}

	s = &Spec{Height: 2, Rows: []string{"a b"}}
	if _, err := s.Build(); err == nil {
		t.Error("expected height mismatch error")
	}

	var nilSpec *Spec
	if _, err := nilSpec.Build(); err == nil {
		t.Error("expected error for nil spec")
	}
}
