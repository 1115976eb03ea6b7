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
package recipe

import (
	"context"
	"image"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/NVIDIA/craftgrid/pkg/errors"
	"github.com/NVIDIA/craftgrid/pkg/recipe/header"
)

const catalogA = `kind: RecipeCatalog
apiVersion: craftgrid.nvidia.com/v1alpha1
metadata:
  schema-version: 1.0.0
recipes:
  - id: sticks
    pattern: ["P", "P"]
    mirrored: false
    ingredients:
      - tag: planks
    output: {id: stick, count: 4}
  - id: broken
    pattern: ["AB", "A"]
    ingredients:
      - item: x
      - item: y
    output: {id: nothing}
  - id: slab
    pattern: ["SSS"]
    ingredients:
      - item: stone
    output: {id: stone_slab, count: 6}
`

const catalogB = `{
  "kind": "RecipeCatalog",
  "recipes": [
    {"id": "slab", "pattern": ["SSS"], "ingredients": [{"item": "stone"}], "output": {"id": "dup"}},
    {"id": "ladder", "pattern": ["S-S", "SSS", "S-S"], "ingredients": [{"item": "stick"}], "output": {"id": "ladder", "count": 3}}
  ]
}`

func TestLoadDir(t *testing.T) {
	fsys := fstest.MapFS{
		"recipes/a.yaml":            {Data: []byte(catalogA)},
		"recipes/b.json":            {Data: []byte(catalogB)},
		"recipes/c.yaml":            {Data: []byte("recipes:\n  - id: z\n    bogus: true\n")},
		"recipes/d.yaml":            {Data: []byte("kind: MatchReport\nrecipes: []\n")},
		"recipes/nested/e.yml":      {Data: []byte("recipes:\n  - id: e\n    pattern: [\"E\"]\n    ingredients: [{any: true}]\n    output: {id: e}\n")},
		"recipes/README.md":         {Data: []byte("# not a catalog")},
		"recipes/nested/ignored.go": {Data: []byte("package ignored")},
	}

	c := New()
	report, err := c.LoadDir(context.Background(), fsys, "recipes")
	require.NoError(t, err)

	assert.Equal(t, []string{"sticks", "slab", "ladder", "e"}, report.Loaded)
	assert.Equal(t, []string{"sticks", "slab", "ladder", "e"}, c.IDs())
	assert.False(t, report.OK())

	type failure struct {
		Source string
		ID     string
		Index  int
		Code   cnserrors.ErrorCode
	}
	var got []failure
	for _, f := range report.Failed {
		assert.NotEmpty(t, f.Error)
		got = append(got, failure{f.Source, f.ID, f.Index, f.Code})
	}
	want := []failure{
		{"recipes/a.yaml", "broken", 1, cnserrors.ErrCodeMalformedPattern},
		{"recipes/b.json", "slab", 0, cnserrors.ErrCodeInvalidRequest},
		{"recipes/c.yaml", "", -1, cnserrors.ErrCodeInvalidRequest},
		{"recipes/d.yaml", "", -1, cnserrors.ErrCodeInvalidRequest},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadDir failures mismatch (-want +got):\n%s", diff)
	}

	e, ok := c.Get("slab")
	require.True(t, ok)
	assert.Equal(t, "stone_slab", e.Definition.Output.ID, "first registration wins")
}

func TestLoadDirMissing(t *testing.T) {
	_, err := New().LoadDir(context.Background(), fstest.MapFS{}, "nope")
	require.Error(t, err)
}

func TestLoadDirCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fsys := fstest.MapFS{"a.yaml": {Data: []byte(catalogA)}}
	_, err := New().LoadDir(ctx, fsys, ".")
	require.Error(t, err)
	assert.Equal(t, cnserrors.ErrCodeTimeout, cnserrors.CodeOf(err))
}

func TestLoadDocumentRejectsNewerSchema(t *testing.T) {
	doc := NewDocument("test", torchDef())
	doc.Metadata[header.KeySchemaVersion] = "2.0.0"

	_, err := New().LoadDocument(doc, "inline")
	require.Error(t, err)
	assert.Equal(t, cnserrors.ErrCodeInvalidRequest, cnserrors.CodeOf(err))
}

func TestLoadFile(t *testing.T) {
	t.Run("local yaml", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(p, []byte(catalogA), 0o600))

		c := New()
		report, err := c.LoadFile(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, []string{"sticks", "slab"}, report.Loaded)
		require.Len(t, report.Failed, 1)
		assert.Equal(t, "broken", report.Failed[0].ID)
	})

	t.Run("remote json", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(catalogB))
		}))
		defer ts.Close()

		c := New()
		report, err := c.LoadFile(context.Background(), ts.URL+"/catalog.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"slab", "ladder"}, report.Loaded)
		assert.True(t, report.OK())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New().LoadFile(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Equal(t, cnserrors.ErrCodeInvalidRequest, cnserrors.CodeOf(err))
	})
}

func TestLoadBuiltin(t *testing.T) {
	c, report, err := Load(context.Background(), "", WithVersion("test"))
	require.NoError(t, err)
	require.True(t, report.OK(), "builtin catalog failures: %+v", report.Failed)
	assert.Equal(t, []string{
		"sticks", "torch", "crafting_table", "stone_pickaxe", "stone_axe",
		"stone_hoe", "bucket", "furnace", "chest",
	}, c.IDs())

	ctx := context.Background()
	tests := []struct {
		name     string
		rows     []string
		wantID   string
		wantAt   image.Point
		mirrored bool
	}{
		{"sticks", []string{"_ oak_planks#planks _", "_ birch_planks#planks _", "_ _ _"}, "sticks", image.Pt(1, 0), false},
		{"torch", []string{"_ _ _", "_ _ coal", "_ _ stick"}, "torch", image.Pt(2, 1), false},
		{"axe literal", []string{"cobblestone cobblestone _", "cobblestone stick _", "_ stick _"}, "stone_axe", image.Pt(0, 0), false},
		{"axe mirrored", []string{"_ cobblestone cobblestone", "_ stick cobblestone", "_ stick _"}, "stone_axe", image.Pt(1, 0), true},
		{"hoe", []string{"cobblestone cobblestone _", "_ stick _", "_ stick _"}, "stone_hoe", image.Pt(0, 0), false},
		{"bucket", []string{"_ _ _", "iron_ingot _ iron_ingot", "_ iron_ingot _"}, "bucket", image.Pt(0, 1), false},
		{"furnace", []string{"cobblestone cobblestone cobblestone", "cobblestone _ cobblestone", "cobblestone cobblestone cobblestone"}, "furnace", image.Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok, err := c.FirstMatch(ctx, mustGrid(t, tt.rows...))
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, m.ID)
			assert.Equal(t, tt.wantAt, m.Placement.Offset)
			assert.Equal(t, tt.mirrored, m.Placement.Mirrored)
		})
	}

	t.Run("stray item blocks match", func(t *testing.T) {
		_, ok, err := c.FirstMatch(ctx, mustGrid(t, "coal _ _", "stick _ dirt", "_ _ _"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLoadDirectorySource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(catalogA), 0o600))

	c, report, err := Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Len(t, report.Failed, 1)
}
