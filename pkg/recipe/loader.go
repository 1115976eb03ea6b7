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
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"runtime"
	"slices"
	"strings"

	"github.com/NVIDIA/craftgrid/pkg/defaults"
	cnserrors "github.com/NVIDIA/craftgrid/pkg/errors"
	"github.com/NVIDIA/craftgrid/pkg/recipe/header"
	"github.com/NVIDIA/craftgrid/pkg/serializer"
	"golang.org/x/sync/errgroup"
)

//go:embed data/*.yaml
var builtinFS embed.FS

const builtinDir = "data"

// LoadFailure records one recipe, or one whole file, that could not be loaded.
type LoadFailure struct {
	Source string              `json:"source" yaml:"source"`
	ID     string              `json:"id,omitempty" yaml:"id,omitempty"`
	Index  int                 `json:"index" yaml:"index"` // -1 when the whole file failed
	Code   cnserrors.ErrorCode `json:"code" yaml:"code"`
	Error  string              `json:"error" yaml:"error"`
}

// LoadReport summarizes a load. Malformed recipes never abort a load;
// they are listed in Failed.
type LoadReport struct {
	Loaded []string      `json:"loaded" yaml:"loaded"`
	Failed []LoadFailure `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// OK reports whether every recipe loaded.
func (r *LoadReport) OK() bool {
	return len(r.Failed) == 0
}

func (r *LoadReport) merge(o *LoadReport) {
	r.Loaded = append(r.Loaded, o.Loaded...)
	r.Failed = append(r.Failed, o.Failed...)
}

func (r *LoadReport) fileFailed(source string, err error) {
	r.Failed = append(r.Failed, LoadFailure{
		Source: source,
		Index:  -1,
		Code:   cnserrors.CodeOf(err),
		Error:  err.Error(),
	})
}

// LoadDocument validates the document header and registers each recipe.
func (c *Catalog) LoadDocument(doc *Document, source string) (*LoadReport, error) {
	if err := doc.Validate(header.KindRecipeCatalog); err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"unsupported catalog document", err, map[string]any{"source": source})
	}

	report := &LoadReport{}
	for i, def := range doc.Recipes {
		if err := c.Register(def); err != nil {
			slog.Warn("skipping recipe",
				"source", source,
				"index", i,
				"recipe", def.ID,
				"pattern", strings.Join(def.Pattern, "/"),
				"ingredients", len(def.Ingredients),
				"error", err,
			)
			report.Failed = append(report.Failed, LoadFailure{
				Source: source,
				ID:     def.ID,
				Index:  i,
				Code:   cnserrors.CodeOf(err),
				Error:  err.Error(),
			})
			continue
		}
		report.Loaded = append(report.Loaded, def.ID)
	}

	slog.Debug("catalog document loaded",
		"source", source,
		"loaded", len(report.Loaded),
		"failed", len(report.Failed),
	)
	return report, nil
}

// LoadFile loads a single catalog document from a local path or an http(s) URL.
func (c *Catalog) LoadFile(ctx context.Context, filePath string) (*LoadReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	doc, err := serializer.FromFile[Document](ctx, filePath, serializer.WithStrict())
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"failed to read catalog", err, map[string]any{"source": filePath})
	}
	return c.LoadDocument(doc, filePath)
}

// LoadDir loads every .json, .yaml and .yml file under dir in fsys. Files
// are decoded in parallel and registered in lexical path order, so the
// result does not depend on scheduling. Unreadable files are reported, not
// fatal.
func (c *Catalog) LoadDir(ctx context.Context, fsys fs.FS, dir string) (*LoadReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	defer cancel()

	var files []string
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".json", ".yaml", ".yml":
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk catalog directory %q: %w", dir, err)
	}
	slices.Sort(files)

	docs := make([]*Document, len(files))
	errs := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docs[i], errs[i] = decodeFS(fsys, name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeTimeout, "catalog load canceled", err)
	}

	report := &LoadReport{}
	for i, name := range files {
		if errs[i] != nil {
			slog.Warn("skipping catalog file", "source", name, "error", errs[i])
			report.fileFailed(name, errs[i])
			continue
		}
		r, err := c.LoadDocument(docs[i], name)
		if err != nil {
			slog.Warn("skipping catalog file", "source", name, "error", err)
			report.fileFailed(name, err)
			continue
		}
		report.merge(r)
	}
	return report, nil
}

func decodeFS(fsys fs.FS, name string) (*Document, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", name, err)
	}
	defer f.Close()

	doc, err := serializer.Decode[Document](serializer.FormatFromPath(name), f, serializer.WithStrict())
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest,
			"failed to decode catalog file", err, map[string]any{"source": name})
	}
	return doc, nil
}

// Load fills a new catalog from source: a directory, a file or an http(s)
// URL. An empty source loads the built-in recipes.
func Load(ctx context.Context, source string, opts ...Option) (*Catalog, *LoadReport, error) {
	c := New(opts...)

	var (
		report *LoadReport
		err    error
	)
	switch {
	case source == "":
		report, err = c.LoadDir(ctx, builtinFS, builtinDir)
	case isDir(source):
		report, err = c.LoadDir(ctx, os.DirFS(source), ".")
	default:
		report, err = c.LoadFile(ctx, source)
	}
	if err != nil {
		return nil, nil, err
	}

	slog.Info("recipe catalog loaded",
		"source", sourceName(source),
		"recipes", c.Len(),
		"failed", len(report.Failed),
	)
	return c, report, nil
}

func isDir(p string) bool {
	fi, err := os.Stat(p)
	return err == nil && fi.IsDir()
}

func sourceName(source string) string {
	if source == "" {
		return "builtin"
	}
	return source
}
