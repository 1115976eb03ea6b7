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
package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/NVIDIA/craftgrid/pkg/recipe"
)

// Serve blocks until a signal arrives, so these tests exercise the routes it
// installs rather than Serve itself.

func TestConstants(t *testing.T) {
	if name != "craftd" {
		t.Errorf("name = %q, want %q", name, "craftd")
	}
	if versionDefault != "dev" {
		t.Errorf("versionDefault = %q, want %q", versionDefault, "dev")
	}
	if version == "" || commit == "" || date == "" {
		t.Error("build variables should not be empty")
	}
}

func builtin(t *testing.T) *recipe.Catalog {
	t.Helper()
	c, _, err := recipe.Load(context.Background(), "")
	if err != nil {
		t.Fatalf("failed to load builtin catalog: %v", err)
	}
	return c
}

func TestRoutes(t *testing.T) {
	routes := Routes(builtin(t))

	if len(routes) != 2 {
		t.Errorf("expected exactly 2 routes, got %d", len(routes))
	}
	for _, p := range []string{"/v1/match", "/v1/recipes"} {
		if h, ok := routes[p]; !ok || h == nil {
			t.Errorf("expected %s route", p)
		}
	}
}

func TestMatchEndpointConcurrent(t *testing.T) {
	routes := Routes(builtin(t))
	handler := routes["/v1/match"]

	bodies := []string{
		`{"rows": ["_ coal", "_ stick"]}`,
		`{"rows": ["oak_planks#planks", "oak_planks#planks"]}`,
		`{"rows": ["dirt"]}`,
	}

	var wg sync.WaitGroup
	errs := make(chan string, 30)
	for i := range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/v1/match", strings.NewReader(bodies[i%len(bodies)]))
			w := httptest.NewRecorder()
			handler(w, req)
			if w.Code != http.StatusOK {
				errs <- w.Body.String()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("unexpected failure: %s", e)
	}
}

func TestRecipesEndpoint(t *testing.T) {
	handler := Routes(builtin(t))["/v1/recipes"]

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/v1/recipes", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"id":"torch"`) {
		t.Errorf("expected torch in listing, got %s", w.Body.String())
	}
}
