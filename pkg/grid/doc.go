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

// Package grid provides the read-only slot view consumed by the shape matcher
// and an in-memory adapter used by the catalog, the CLI and the API server.
//
// # Snapshot
//
// Snapshot is the narrow capability the matcher borrows for the duration of a
// single match attempt:
//
//	type Snapshot interface {
//	    Width() int
//	    Height() int
//	    SlotAt(x, y int) (Item, bool)
//	}
//
// Slots are addressed with x growing left to right and y growing top to
// bottom. SlotAt reports false for an empty slot. Callers never query outside
// [0, Width()) x [0, Height()).
//
// # Textual grids
//
// Parse builds a Grid from whitespace separated tokens, one string per row:
//
//	g, err := grid.Parse([]string{
//	    "planks  _     ",
//	    "_       planks",
//	})
//
// The tokens "_" and "-" denote empty slots. Any other token is an item ID,
// optionally followed by "#tag" suffixes (e.g. "oak_planks#planks#wood").
//
// Spec is the serializable form of a textual grid used by request bodies and
// CLI input files.
package grid
