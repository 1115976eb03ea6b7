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
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/craftgrid/pkg/recipe"
	"github.com/NVIDIA/craftgrid/pkg/recipe/header"
)

const testCatalog = `kind: RecipeCatalog
recipes:
  - id: diagonal
    pattern: ["A-", "-A"]
    mirrored: false
    ingredients:
      - item: x
    output: {id: diag}
  - id: broken
    pattern: ["AB"]
    ingredients:
      - item: x
    output: {id: nothing}
`

// run executes craftctl with args and returns the JSON written to --output.
func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	t.Setenv(EnvCatalog, "")

	out := filepath.Join(t.TempDir(), "out.json")
	argv := append([]string{name}, args...)
	argv = append(argv, "--format", "json", "--output", out)

	err := newRootCmd().Run(context.Background(), argv)
	data, readErr := os.ReadFile(out)
	if err == nil {
		require.NoError(t, readErr)
	}
	return data, err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(p, []byte(testCatalog), 0o600))
	return p
}

func TestMatchCommand(t *testing.T) {
	t.Run("builtin catalog inline rows", func(t *testing.T) {
		data, err := run(t, "match", "--row", "_ coal", "--row", "_ stick")
		require.NoError(t, err)

		var report recipe.MatchReport
		require.NoError(t, json.Unmarshal(data, &report))
		assert.Equal(t, header.KindMatchReport, report.Kind)
		require.True(t, report.Matched)
		require.Len(t, report.Matches, 1)
		assert.Equal(t, "torch", report.Matches[0].ID)
	})

	t.Run("grid file and custom catalog", func(t *testing.T) {
		gridPath := filepath.Join(t.TempDir(), "grid.yaml")
		require.NoError(t, os.WriteFile(gridPath, []byte("rows:\n  - \"_ x _\"\n  - \"_ _ x\"\n"), 0o600))

		data, err := run(t, "match", "--catalog", writeCatalog(t), "--grid", gridPath, "--all")
		require.NoError(t, err)

		var report recipe.MatchReport
		require.NoError(t, json.Unmarshal(data, &report))
		require.Len(t, report.Matches, 1)
		assert.Equal(t, "diagonal", report.Matches[0].ID)
		assert.Equal(t, 1, report.Matches[0].Placement.Offset.X)
	})

	t.Run("no match", func(t *testing.T) {
		data, err := run(t, "match", "--row", "dirt")
		require.NoError(t, err)

		var report recipe.MatchReport
		require.NoError(t, json.Unmarshal(data, &report))
		assert.False(t, report.Matched)
		assert.Empty(t, report.Matches)
	})

	t.Run("missing grid", func(t *testing.T) {
		_, err := run(t, "match")
		require.Error(t, err)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := run(t, "match", "--row", "a b", "--row", "c")
		require.Error(t, err)
	})
}

func TestLintCommand(t *testing.T) {
	catalog := writeCatalog(t)

	t.Run("reports failures", func(t *testing.T) {
		data, err := run(t, "lint", "--catalog", catalog)
		require.NoError(t, err)

		var report LintReport
		require.NoError(t, json.Unmarshal(data, &report))
		assert.Equal(t, catalog, report.Source)
		assert.Equal(t, 1, report.Recipes)
		assert.False(t, report.Valid)
		assert.Equal(t, []string{"diagonal"}, report.Loaded)
		require.Len(t, report.Failed, 1)
		assert.Equal(t, "broken", report.Failed[0].ID)
	})

	t.Run("fail on error", func(t *testing.T) {
		_, err := run(t, "lint", "--catalog", catalog, "--fail-on-error")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrLintFailed))
	})

	t.Run("builtin is valid", func(t *testing.T) {
		data, err := run(t, "lint", "--fail-on-error")
		require.NoError(t, err)

		var report LintReport
		require.NoError(t, json.Unmarshal(data, &report))
		assert.Equal(t, "builtin", report.Source)
		assert.True(t, report.Valid)
	})
}

func TestShapeCommand(t *testing.T) {
	data, err := run(t, "shape", "--pattern=xy-", "--pattern=-yx", "--mirrored")
	require.NoError(t, err)

	var report ShapeReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, []string{"AB-", "-BA"}, report.Pattern)
	assert.Equal(t, []string{"-BA", "AB-"}, report.Mirror)
	assert.Equal(t, 3, report.Width)
	assert.Equal(t, 2, report.Height)
	assert.Equal(t, 2, report.Symbols)
}

func TestDescribeShape(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		wantErr bool
	}{
		{"single cell", []string{"A"}, false},
		{"all blank", []string{"--", "--"}, false},
		{"ragged", []string{"AA", "A"}, true},
		{"empty", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := describeShape(tt.rows, false)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Nil(t, r.Mirror)
		})
	}
}
