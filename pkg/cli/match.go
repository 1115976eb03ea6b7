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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/craftgrid/pkg/defaults"
	"github.com/NVIDIA/craftgrid/pkg/grid"
	"github.com/NVIDIA/craftgrid/pkg/recipe"
	"github.com/NVIDIA/craftgrid/pkg/serializer"
)

func matchCmd() *cli.Command {
	return &cli.Command{
		Name:  "match",
		Usage: "Find the recipes a crafting grid satisfies",
		Description: `Loads a recipe catalog and matches a grid against it.

The grid is read from a JSON or YAML file (or URL) holding a grid spec:

  rows:
    - "_ coal"
    - "_ stick"

or given inline with repeated --row flags. Tokens are whitespace separated;
"_" or "-" is an empty slot and "id#tag" attaches tags to an item.

By default only the first matching recipe, in catalog order, is reported.`,
		Flags: []cli.Flag{
			catalogFlag(),
			&cli.StringFlag{
				Name:    "grid",
				Aliases: []string{"g"},
				Usage:   "grid spec file or http(s) URL",
			},
			&cli.StringSliceFlag{
				Name:    "row",
				Aliases: []string{"r"},
				Usage:   "inline grid row, repeat for each row (overrides --grid)",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "report every matching recipe",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLIMatchTimeout,
				Usage: "overall timeout for loading and matching",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()

			spec, err := gridSpecFromCmd(ctx, cmd)
			if err != nil {
				return err
			}
			g, err := recipe.ParseGridSpec(spec)
			if err != nil {
				return fmt.Errorf("invalid grid: %w", err)
			}

			cat, _, err := recipe.Load(ctx, cmd.String("catalog"), recipe.WithVersion(version))
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			var matches []recipe.MatchResult
			if cmd.Bool("all") {
				matches, err = cat.FindMatches(ctx, g)
			} else {
				m, ok, ferr := cat.FirstMatch(ctx, g)
				if ok {
					matches = []recipe.MatchResult{m}
				}
				err = ferr
			}
			if err != nil {
				return fmt.Errorf("match failed: %w", err)
			}

			return writeOutput(ctx, cmd, recipe.NewMatchReport(version, g, matches))
		},
	}
}

func gridSpecFromCmd(ctx context.Context, cmd *cli.Command) (*grid.Spec, error) {
	if rows := cmd.StringSlice("row"); len(rows) > 0 {
		return &grid.Spec{Rows: rows}, nil
	}

	path := cmd.String("grid")
	if path == "" {
		return nil, fmt.Errorf("either --grid or --row is required")
	}
	spec, err := serializer.FromFile[grid.Spec](ctx, path, serializer.WithStrict())
	if err != nil {
		return nil, fmt.Errorf("failed to load grid from %q: %w", path, err)
	}
	return spec, nil
}
