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
package cli

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/craftgrid/pkg/ingredient"
	"github.com/NVIDIA/craftgrid/pkg/shape"
)

// ShapeReport describes a parsed pattern.
type ShapeReport struct {
	Input    []string `json:"input" yaml:"input"`
	Pattern  []string `json:"pattern" yaml:"pattern"`
	Width    int      `json:"width" yaml:"width"`
	Height   int      `json:"height" yaml:"height"`
	Symbols  int      `json:"symbols" yaml:"symbols"`
	Mirrored bool     `json:"mirrored" yaml:"mirrored"`
	Mirror   []string `json:"mirror,omitempty" yaml:"mirror,omitempty"`
}

func shapeCmd() *cli.Command {
	return &cli.Command{
		Name:  "shape",
		Usage: "Parse a pattern and show its canonical form",
		Description: `Parses pattern rows the way catalog recipes are parsed and prints the
canonical form, in which the n-th distinct symbol is written as the n-th
letter. With --mirrored the horizontally flipped pattern is shown as well.

Rows beginning with "-" must be passed as --pattern=-A-.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "pattern",
				Aliases:  []string{"p"},
				Usage:    "pattern row, repeat for each row ('-' is blank)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "mirrored",
				Usage: "also show the mirrored pattern",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			report, err := describeShape(cmd.StringSlice("pattern"), cmd.Bool("mirrored"))
			if err != nil {
				return err
			}
			return writeOutput(ctx, cmd, report)
		},
	}
}

// describeShape parses rows with a wildcard bound to every symbol.
func describeShape(rows []string, mirrored bool) (*ShapeReport, error) {
	n := 0
	for _, row := range rows {
		n += utf8.RuneCountInString(row)
	}
	ingredients := make([]ingredient.Ingredient, n)
	for i := range ingredients {
		ingredients[i] = ingredient.Any()
	}

	r, err := shape.Build(rows, mirrored, ingredients...)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	p := r.Pattern()
	report := &ShapeReport{
		Input:    rows,
		Pattern:  p.Rows(),
		Width:    p.Width(),
		Height:   p.Height(),
		Symbols:  p.Symbols(),
		Mirrored: mirrored,
	}
	if mirrored {
		report.Mirror = p.Mirror().Rows()
	}
	return report, nil
}
