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

// Package ingredient defines the predicate a recipe uses to decide whether an
// item may occupy a pattern position.
//
// The shape matcher treats ingredients as opaque: it only calls Test. The
// implementations here cover the common cases:
//
//	ingredient.ForItem("minecraft:stick")  // exact item ID
//	ingredient.ForTag("planks")            // any item carrying the tag
//	ingredient.Any()                       // any item at all
//	ingredient.OneOf(a, b)                 // either predicate
//	ingredient.Func(func(it grid.Item) bool { return it.Count >= 4 })
//
// Item IDs and tags are compared case-insensitively using Unicode case folding.
//
// Spec is the serializable form used in recipe catalog documents:
//
//	ingredients:
//	  - item: minecraft:stick
//	  - tag: planks
//	  - any: true
//	  - oneOf:
//	      - item: coal
//	      - item: charcoal
//
// All implementations are immutable and safe for concurrent use.
package ingredient
