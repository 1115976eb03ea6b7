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

package ingredient

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/NVIDIA/craftgrid/pkg/grid"
)

// Ingredient tests whether an item satisfies a pattern position.
// Test must be pure: it may be called any number of times in any order.
type Ingredient interface {
	Test(item grid.Item) bool
}

// fold returns the case-folded form of s. Casers are stateful, so a fresh one
// is created per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

type itemIngredient struct {
	id string
}

// ForItem returns an Ingredient accepting items with the given ID.
func ForItem(id string) Ingredient {
	return itemIngredient{id: fold(id)}
}

func (i itemIngredient) Test(item grid.Item) bool {
	return fold(item.ID) == i.id
}

func (i itemIngredient) String() string {
	return "item:" + i.id
}

type tagIngredient struct {
	tag string
}

// ForTag returns an Ingredient accepting items carrying the given tag.
func ForTag(tag string) Ingredient {
	return tagIngredient{tag: fold(tag)}
}

func (t tagIngredient) Test(item grid.Item) bool {
	return slices.ContainsFunc(item.Tags, func(tag string) bool {
		return fold(tag) == t.tag
	})
}

func (t tagIngredient) String() string {
	return "tag:" + t.tag
}

type anyIngredient struct{}

// Any returns an Ingredient accepting every item.
func Any() Ingredient {
	return anyIngredient{}
}

func (anyIngredient) Test(grid.Item) bool { return true }

func (anyIngredient) String() string { return "any" }

type oneOf []Ingredient

// OneOf returns an Ingredient accepting items accepted by any of the given
// ingredients. OneOf with no arguments accepts nothing.
func OneOf(options ...Ingredient) Ingredient {
	return oneOf(slices.Clone(options))
}

func (o oneOf) Test(item grid.Item) bool {
	for _, opt := range o {
		if opt != nil && opt.Test(item) {
			return true
		}
	}
	return false
}

func (o oneOf) String() string {
	parts := make([]string, 0, len(o))
	for _, opt := range o {
		parts = append(parts, Describe(opt))
	}
	return "oneOf(" + strings.Join(parts, ",") + ")"
}

// Func adapts a plain function to the Ingredient interface.
type Func func(item grid.Item) bool

// Test implements Ingredient.
func (f Func) Test(item grid.Item) bool {
	return f(item)
}

// Describe returns a short human readable form of in for logs and reports.
func Describe(in Ingredient) string {
	switch v := in.(type) {
	case nil:
		return "<nil>"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T", in)
	}
}
