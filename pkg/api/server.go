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
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/NVIDIA/craftgrid/pkg/logging"
	"github.com/NVIDIA/craftgrid/pkg/recipe"
	"github.com/NVIDIA/craftgrid/pkg/server"
)

const (
	name           = "craftd"
	versionDefault = "dev"

	// EnvCatalog names the catalog source (file, directory or URL). When
	// unset the built-in recipes are served.
	EnvCatalog = "CRAFTGRID_CATALOG"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/craftgrid/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the API handlers for c.
func Routes(c *recipe.Catalog) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/match":   c.HandleMatch,
		"/v1/recipes": c.HandleRecipes,
	}
}

// Serve loads the catalog, starts the API server and blocks until shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	c, report, err := recipe.Load(ctx, os.Getenv(EnvCatalog), recipe.WithVersion(version))
	if err != nil {
		return fmt.Errorf("failed to load recipe catalog: %w", err)
	}
	for _, f := range report.Failed {
		slog.Warn("recipe not served", "source", f.Source, "recipe", f.ID, "code", string(f.Code), "error", f.Error)
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(c)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
