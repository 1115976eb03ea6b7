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

package version

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
	ErrIncompatible      = errors.New("incompatible schema version")
)

// Version is a semantic version with 1, 2 or 3 significant components.
// Precision records how many components were given; comparisons stop there.
// Build or pre-release suffixes ("-rc1", "+sha") are kept in Extras.
type Version struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	Precision int    `json:"precision,omitempty" yaml:"precision,omitempty"`
	Extras    string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// NewVersion returns a full-precision Version.
func NewVersion(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch, Precision: 3}
}

// String renders the version up to its precision, without Extras.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// ParseVersion parses "1", "1.2", "1.2.3" with an optional "v" prefix and
// an optional "-suffix" or "+metadata" tail.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	s = strings.TrimPrefix(s, "v")

	var v Version
	main := s
	// A '-' or '+' only starts the suffix when it follows a digit, so "-1"
	// stays a (negative) component and is rejected below.
	for i := 1; i < len(s); i++ {
		if (s[i] == '-' || s[i] == '+') && s[i-1] >= '0' && s[i-1] <= '9' {
			main, v.Extras = s[:i], s[i:]
			break
		}
	}

	parts := strings.Split(main, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	nums := [3]int{}
	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if n < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, n)
		}
		nums[i] = n
	}

	v.Major, v.Minor, v.Patch = nums[0], nums[1], nums[2]
	v.Precision = len(parts)
	return v, nil
}

// MustParseVersion is ParseVersion for hardcoded strings; it panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// Compare returns -1, 0 or 1 comparing v with other up to the lower of the
// two precisions.
func (v Version) Compare(other Version) int {
	precision := min(v.Precision, other.Precision)
	if c := cmp.Compare(v.Major, other.Major); c != 0 || precision == 1 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 || precision == 2 {
		return c
	}
	return cmp.Compare(v.Patch, other.Patch)
}

// EqualsOrNewer reports whether v is at least other, compared up to v's
// precision.
func (v Version) EqualsOrNewer(other Version) bool {
	o := other
	o.Precision = max(v.Precision, 1)
	return v.Compare(o) >= 0
}

// Equals reports whether all three components match, ignoring precision.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor && v.Patch == other.Patch
}

// IsValid reports whether components are non-negative and precision is 1..3.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0 &&
		v.Precision >= 1 && v.Precision <= 3
}

// CheckCompatible parses schema and verifies it can be read by a reader that
// supports the given version: majors must match and schema must not be newer.
func CheckCompatible(schema string, supported Version) error {
	v, err := ParseVersion(schema)
	if err != nil {
		return fmt.Errorf("schema version %q: %w", schema, err)
	}
	if v.Major != supported.Major {
		return fmt.Errorf("%w: schema %s, supported %s", ErrIncompatible, v, supported)
	}
	if v.Compare(supported) > 0 {
		return fmt.Errorf("%w: schema %s is newer than supported %s", ErrIncompatible, v, supported)
	}
	return nil
}
