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

package shape

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPattern is returned for patterns with no rows or no columns.
	ErrEmptyPattern = errors.New("pattern has no cells")
	// ErrNonRectangular is returned when pattern rows differ in length.
	ErrNonRectangular = errors.New("pattern rows have unequal length")
	// ErrMissingIngredient is returned when a symbol has no ingredient to bind.
	ErrMissingIngredient = errors.New("pattern symbol has no ingredient")
	// ErrNilIngredient is returned when a symbol is bound to a nil ingredient.
	ErrNilIngredient = errors.New("pattern symbol bound to nil ingredient")
)

// MalformedPatternError describes a pattern that cannot be turned into a
// Recipe. It unwraps to one of the Err* sentinels of this package.
type MalformedPatternError struct {
	// Rows is the offending pattern text.
	Rows []string
	// Symbols is the number of distinct non-blank symbols in Rows.
	Symbols int
	// Ingredients is the number of ingredients supplied.
	Ingredients int
	// Detail locates the problem, e.g. the row or symbol at fault.
	Detail string

	Err error
}

func (e *MalformedPatternError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "malformed pattern %q: %v", e.Rows, e.Err)
	if e.Detail != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Detail)
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, ", symbols=%d ingredients=%d", e.Symbols, e.Ingredients)
	return sb.String()
}

func (e *MalformedPatternError) Unwrap() error {
	return e.Err
}
