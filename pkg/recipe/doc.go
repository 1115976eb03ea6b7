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
// Package recipe holds the catalog of shaped recipes: serializable
// definitions, a concurrent registry, loaders for files, directories and
// URLs, and the HTTP handlers served by craftd.
//
// A catalog document:
//
//	kind: RecipeCatalog
//	apiVersion: craftgrid.nvidia.com/v1alpha1
//	metadata:
//	  schema-version: 1.0.0
//	recipes:
//	  - id: torch
//	    pattern: ["C", "S"]
//	    mirrored: false
//	    ingredients:
//	      - oneOf: [{item: coal}, {item: charcoal}]
//	      - item: stick
//	    output: {id: torch, count: 4}
//
// Loading never stops at a malformed recipe. Each failure is logged and
// listed in the LoadReport, and the remaining recipes are registered:
//
//	cat, report, err := recipe.Load(ctx, "recipes/")
//	if err != nil {
//	    return err
//	}
//	for _, f := range report.Failed {
//	    fmt.Println(f.Source, f.ID, f.Error)
//	}
//	m, ok, err := cat.FirstMatch(ctx, g)
//
// An empty source loads the built-in recipes embedded in the binary.
package recipe
