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
	"errors"
	"fmt"

	cnserrors "github.com/NVIDIA/craftgrid/pkg/errors"
	"github.com/NVIDIA/craftgrid/pkg/grid"
	"github.com/NVIDIA/craftgrid/pkg/ingredient"
	"github.com/NVIDIA/craftgrid/pkg/recipe/header"
	"github.com/NVIDIA/craftgrid/pkg/shape"
	"k8s.io/utils/ptr"
)

// Definition is the serializable form of a shaped recipe.
type Definition struct {
	// ID uniquely identifies the recipe within a catalog.
	ID string `json:"id" yaml:"id"`

	// Pattern rows; '-' is blank and every other rune is a symbol bound to
	// Ingredients by order of first appearance.
	Pattern []string `json:"pattern" yaml:"pattern"`

	// Mirrored allows the horizontally flipped pattern to match as well.
	// Defaults to true when omitted.
	Mirrored *bool `json:"mirrored,omitempty" yaml:"mirrored,omitempty"`

	Ingredients []ingredient.Spec `json:"ingredients" yaml:"ingredients"`

	// Output is what the recipe produces. It is carried through to match
	// results and never consulted by matching.
	Output grid.Item `json:"output" yaml:"output"`
}

// IsMirrored reports the effective mirror flag.
func (d Definition) IsMirrored() bool {
	return ptr.Deref(d.Mirrored, true)
}

// Compile builds the matcher for d. Failures are StructuredErrors coded
// INVALID_REQUEST, INVALID_INGREDIENT or MALFORMED_PATTERN.
func (d Definition) Compile() (*shape.Recipe, error) {
	if d.ID == "" {
		return nil, cnserrors.New(cnserrors.ErrCodeInvalidRequest, "recipe id is required")
	}

	ingredients, err := ingredient.BuildAll(d.Ingredients)
	if err != nil {
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidIngredient,
			fmt.Sprintf("recipe %q has an invalid ingredient", d.ID), err,
			map[string]any{"recipe": d.ID})
	}

	r, err := shape.Build(d.Pattern, d.IsMirrored(), ingredients...)
	if err != nil {
		ctx := map[string]any{
			"recipe":  d.ID,
			"pattern": d.Pattern,
		}
		var mpe *shape.MalformedPatternError
		if errors.As(err, &mpe) {
			ctx["symbols"] = mpe.Symbols
			ctx["ingredients"] = mpe.Ingredients
		}
		return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeMalformedPattern,
			fmt.Sprintf("recipe %q has a malformed pattern", d.ID), err, ctx)
	}
	return r, nil
}

// Document is a catalog file: a header followed by recipe definitions.
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Recipes []Definition `json:"recipes" yaml:"recipes"`
}

// NewDocument returns a RecipeCatalog document stamped with writerVersion.
func NewDocument(writerVersion string, defs ...Definition) *Document {
	doc := &Document{Recipes: defs}
	doc.Init(header.KindRecipeCatalog, writerVersion)
	return doc
}
