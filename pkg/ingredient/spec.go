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
	"errors"
	"fmt"
)

var (
	// ErrEmptySpec is returned when a spec selects no matching rule.
	ErrEmptySpec = errors.New("ingredient spec must set one of item, tag, any or oneOf")
	// ErrAmbiguousSpec is returned when a spec sets more than one matching rule.
	ErrAmbiguousSpec = errors.New("ingredient spec must set only one of item, tag, any or oneOf")
)

// Spec is the serializable description of an Ingredient.
// Exactly one of Item, Tag, Any or OneOf must be set.
type Spec struct {
	Item  string `json:"item,omitempty" yaml:"item,omitempty"`
	Tag   string `json:"tag,omitempty" yaml:"tag,omitempty"`
	Any   bool   `json:"any,omitempty" yaml:"any,omitempty"`
	OneOf []Spec `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
}

// Build converts the spec into an Ingredient.
func (s Spec) Build() (Ingredient, error) {
	set := 0
	if s.Item != "" {
		set++
	}
	if s.Tag != "" {
		set++
	}
	if s.Any {
		set++
	}
	if len(s.OneOf) > 0 {
		set++
	}

	switch {
	case set == 0:
		return nil, ErrEmptySpec
	case set > 1:
		return nil, fmt.Errorf("%w: %+v", ErrAmbiguousSpec, s)
	}

	switch {
	case s.Item != "":
		return ForItem(s.Item), nil
	case s.Tag != "":
		return ForTag(s.Tag), nil
	case s.Any:
		return Any(), nil
	}

	options := make([]Ingredient, 0, len(s.OneOf))
	for i, o := range s.OneOf {
		in, err := o.Build()
		if err != nil {
			return nil, fmt.Errorf("oneOf[%d]: %w", i, err)
		}
		options = append(options, in)
	}
	return OneOf(options...), nil
}

// BuildAll converts an ordered list of specs, preserving order.
func BuildAll(specs []Spec) ([]Ingredient, error) {
	out := make([]Ingredient, 0, len(specs))
	for i, s := range specs {
		in, err := s.Build()
		if err != nil {
			return nil, fmt.Errorf("ingredient %d: %w", i, err)
		}
		out = append(out, in)
	}
	return out, nil
}
