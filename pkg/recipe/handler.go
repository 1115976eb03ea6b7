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
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/NVIDIA/craftgrid/pkg/defaults"
	cnserrors "github.com/NVIDIA/craftgrid/pkg/errors"
	"github.com/NVIDIA/craftgrid/pkg/grid"
	"github.com/NVIDIA/craftgrid/pkg/ingredient"
	"github.com/NVIDIA/craftgrid/pkg/recipe/header"
	"github.com/NVIDIA/craftgrid/pkg/serializer"
	"github.com/NVIDIA/craftgrid/pkg/server"
)

// MatchReport is the result of matching one grid against a catalog.
type MatchReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Grid    []string      `json:"grid" yaml:"grid"`
	Matched bool          `json:"matched" yaml:"matched"`
	Matches []MatchResult `json:"matches" yaml:"matches"`
}

// NewMatchReport builds a MatchReport for g.
func NewMatchReport(writerVersion string, g *grid.Grid, matches []MatchResult) *MatchReport {
	r := &MatchReport{
		Grid:    g.Rows(),
		Matched: len(matches) > 0,
		Matches: matches,
	}
	if r.Matches == nil {
		r.Matches = []MatchResult{}
	}
	r.Init(header.KindMatchReport, writerVersion)
	return r
}

// RecipeSummary is the listing view of a registered recipe.
type RecipeSummary struct {
	ID          string    `json:"id" yaml:"id"`
	Pattern     []string  `json:"pattern" yaml:"pattern"`
	Mirrored    bool      `json:"mirrored" yaml:"mirrored"`
	Ingredients []string  `json:"ingredients" yaml:"ingredients"`
	Output      grid.Item `json:"output" yaml:"output"`
}

// Summaries lists the catalog in registration order.
func (c *Catalog) Summaries() []RecipeSummary {
	entries := c.Entries()
	out := make([]RecipeSummary, 0, len(entries))
	for _, e := range entries {
		ings := e.Recipe.Ingredients()
		names := make([]string, len(ings))
		for i, in := range ings {
			names[i] = ingredient.Describe(in)
		}
		out = append(out, RecipeSummary{
			ID:          e.Definition.ID,
			Pattern:     e.Recipe.Pattern().Rows(),
			Mirrored:    e.Recipe.Mirrored(),
			Ingredients: names,
			Output:      e.Definition.Output,
		})
	}
	return out
}

// ParseGridSpec validates a requested grid against the server limits and
// builds it.
func ParseGridSpec(spec *grid.Spec) (*grid.Grid, error) {
	if spec == nil || len(spec.Rows) == 0 {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "grid rows are required")
	}
	g, err := spec.Build()
	if err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "invalid grid", err)
	}
	if g.Width() > defaults.MaxGridWidth || g.Height() > defaults.MaxGridHeight {
		return nil, cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"grid exceeds size limit", map[string]any{
				"width":     g.Width(),
				"height":    g.Height(),
				"maxWidth":  defaults.MaxGridWidth,
				"maxHeight": defaults.MaxGridHeight,
			})
	}
	return g, nil
}

// HandleMatch serves POST /v1/match. The body is a grid.Spec in JSON or
// YAML (by Content-Type). With ?all=true every matching recipe is returned,
// otherwise only the first.
func (c *Catalog) HandleMatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.MatchHandlerTimeout)
	defer cancel()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodPost},
			})
		return
	}
	defer r.Body.Close()

	all := false
	if v := r.URL.Query().Get("all"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
				"Invalid query parameter", false, map[string]any{"all": v})
			return
		}
		all = b
	}

	format := serializer.FormatFromContentType(r.Header.Get("Content-Type"))
	spec, err := serializer.Decode[grid.Spec](format, r.Body, serializer.WithStrict())
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, cnserrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{"limit": mbe.Limit})
			return
		}
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"Invalid grid", false, map[string]any{"error": err.Error()})
		return
	}

	g, err := ParseGridSpec(spec)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid grid", nil)
		return
	}

	var matches []MatchResult
	if all {
		matches, err = c.FindMatches(ctx, g)
	} else {
		var m MatchResult
		var ok bool
		m, ok, err = c.FirstMatch(ctx, g)
		if ok {
			matches = []MatchResult{m}
		}
	}
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Match failed", nil)
		return
	}

	slog.Debug("match",
		"requestID", server.RequestIDFromContext(r.Context()),
		"grid", g.String(),
		"matches", len(matches),
	)

	serializer.RespondJSON(w, http.StatusOK, NewMatchReport(c.version, g, matches))
}

// HandleRecipes serves GET /v1/recipes.
func (c *Catalog) HandleRecipes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{http.MethodGet},
			})
		return
	}

	if id := r.URL.Query().Get("id"); id != "" {
		e, ok := c.Get(id)
		if !ok {
			server.WriteError(w, r, http.StatusNotFound, cnserrors.ErrCodeNotFound,
				fmt.Sprintf("recipe %q not found", id), false, nil)
			return
		}
		serializer.RespondJSON(w, http.StatusOK, e.Definition)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(defaults.RecipesCacheTTL.Seconds())))
	serializer.RespondJSON(w, http.StatusOK, c.Summaries())
}
