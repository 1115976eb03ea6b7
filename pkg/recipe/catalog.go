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
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/NVIDIA/craftgrid/pkg/defaults"
	cnserrors "github.com/NVIDIA/craftgrid/pkg/errors"
	"github.com/NVIDIA/craftgrid/pkg/grid"
	"github.com/NVIDIA/craftgrid/pkg/shape"
)

// Entry is a registered recipe: its definition and compiled matcher.
type Entry struct {
	Definition Definition
	Recipe     *shape.Recipe
}

// MatchResult describes one recipe that matched a grid.
type MatchResult struct {
	ID        string          `json:"id" yaml:"id"`
	Output    grid.Item       `json:"output" yaml:"output"`
	Placement shape.Placement `json:"placement" yaml:"placement"`
}

// Catalog is a registry of shaped recipes, safe for concurrent use.
// Lookups preserve registration order.
type Catalog struct {
	mu      sync.RWMutex
	entries []*Entry
	byID    map[string]*Entry
	limit   int
	version string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLimit caps the number of recipes. Zero or less means unlimited.
func WithLimit(n int) Option {
	return func(c *Catalog) {
		c.limit = n
	}
}

// WithVersion sets the writer version stamped on match reports.
func WithVersion(v string) Option {
	return func(c *Catalog) {
		c.version = v
	}
}

// New returns an empty catalog, capped at defaults.MaxCatalogRecipes unless
// overridden.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		byID:  make(map[string]*Entry),
		limit: defaults.MaxCatalogRecipes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register compiles def and adds it to the catalog. A malformed definition
// leaves the catalog unchanged.
func (c *Catalog) Register(def Definition) error {
	r, err := def.Compile()
	if err != nil {
		registrations.WithLabelValues(resultLabel(err)).Inc()
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[def.ID]; exists {
		registrations.WithLabelValues(resultDuplicate).Inc()
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			fmt.Sprintf("recipe %q is already registered", def.ID),
			map[string]any{"recipe": def.ID})
	}
	if c.limit > 0 && len(c.entries) >= c.limit {
		registrations.WithLabelValues(resultRejected).Inc()
		return cnserrors.NewWithContext(cnserrors.ErrCodeInvalidRequest,
			"catalog is full", map[string]any{"limit": c.limit})
	}

	e := &Entry{Definition: def, Recipe: r}
	c.entries = append(c.entries, e)
	c.byID[def.ID] = e
	registrations.WithLabelValues(resultOK).Inc()
	return nil
}

// Get returns the recipe registered under id.
func (c *Catalog) Get(id string) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.byID[id]
	return e, ok
}

// IDs returns the registered recipe IDs in registration order.
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]string, len(c.entries))
	for i, e := range c.entries {
		ids[i] = e.Definition.ID
	}
	return ids
}

// Len returns the number of registered recipes.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Entries returns a copy of the registered entries in registration order.
func (c *Catalog) Entries() []*Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.entries)
}

// FindMatches returns every recipe that matches g, in registration order.
// The context is checked between recipes.
func (c *Catalog) FindMatches(ctx context.Context, g grid.Snapshot) ([]MatchResult, error) {
	return c.find(ctx, g, false)
}

// FirstMatch returns the earliest registered recipe that matches g.
func (c *Catalog) FirstMatch(ctx context.Context, g grid.Snapshot) (MatchResult, bool, error) {
	res, err := c.find(ctx, g, true)
	if err != nil || len(res) == 0 {
		return MatchResult{}, false, err
	}
	return res[0], true, nil
}

func (c *Catalog) find(ctx context.Context, g grid.Snapshot, first bool) ([]MatchResult, error) {
	start := time.Now()
	defer func() {
		matchDuration.Observe(time.Since(start).Seconds())
	}()

	entries := c.Entries()
	var out []MatchResult
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			matchAttempts.WithLabelValues(resultCanceled).Inc()
			return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "match canceled", err)
		}
		placement, ok := e.Recipe.Match(g)
		if !ok {
			continue
		}
		out = append(out, MatchResult{
			ID:        e.Definition.ID,
			Output:    e.Definition.Output,
			Placement: placement,
		})
		if first {
			break
		}
	}

	if len(out) == 0 {
		matchAttempts.WithLabelValues(resultNoMatch).Inc()
	} else {
		matchAttempts.WithLabelValues(resultMatched).Inc()
	}
	return out, nil
}
