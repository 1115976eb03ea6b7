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

// Package shape implements shaped recipe matching.
//
// A shaped recipe is a small rectangular pattern of ingredient symbols and
// blanks. The pattern is written as equal-length rows, one rune per cell:
//
//	rows := []string{
//	    "A-",
//	    "-A",
//	}
//
// The rune '-' (BlankSymbol) is a blank cell. Every other distinct rune is an
// opaque symbol; symbols are bound to ingredients in row-major order of first
// appearance, so the first new symbol takes ingredients[0], the next new one
// ingredients[1], and repeated symbols reuse their earlier binding.
//
// # Matching
//
// A Recipe matches a grid.Snapshot when the pattern fits inside the grid at
// some offset and every slot agrees with it:
//
//   - a blank cell requires an empty slot,
//   - an ingredient cell requires an occupied slot whose item passes the
//     ingredient's Test,
//   - every slot outside the pattern's footprint must be empty.
//
// Offsets are searched row by row (y outer, x inner). Recipes built with
// mirrored set also accept the pattern reflected about its vertical axis;
// the literal orientation is always tried first.
//
// Recipes are immutable after Build and safe for concurrent use. Matching
// never fails: construction problems surface from Parse and Build as a
// *MalformedPatternError.
package shape
