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
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/craftgrid/pkg/recipe"
)

// ErrLintFailed is returned by lint --fail-on-error when a recipe did not load.
var ErrLintFailed = errors.New("catalog has invalid recipes")

// LintReport is the output of the lint command.
type LintReport struct {
	Source  string `json:"source" yaml:"source"`
	Recipes int    `json:"recipes" yaml:"recipes"`
	Valid   bool   `json:"valid" yaml:"valid"`

	recipe.LoadReport `json:",inline" yaml:",inline"`
}

func lintCmd() *cli.Command {
	return &cli.Command{
		Name:  "lint",
		Usage: "Validate a recipe catalog",
		Description: `Loads every recipe in the catalog and reports the ones that could not
be registered: malformed patterns, invalid ingredients and duplicate IDs.
Loading continues past failures, so a single run lists every problem.`,
		Flags: []cli.Flag{
			catalogFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "exit non-zero when any recipe fails to load",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			source := cmd.String("catalog")
			cat, report, err := recipe.Load(ctx, source, recipe.WithVersion(version))
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			out := LintReport{
				Source:     source,
				Recipes:    cat.Len(),
				Valid:      report.OK(),
				LoadReport: *report,
			}
			if out.Source == "" {
				out.Source = "builtin"
			}
			if err := writeOutput(ctx, cmd, out); err != nil {
				return err
			}

			if !report.OK() {
				slog.Warn("catalog has invalid recipes", "failed", len(report.Failed))
				if cmd.Bool("fail-on-error") {
					return fmt.Errorf("%w: %d failed", ErrLintFailed, len(report.Failed))
				}
			}
			return nil
		},
	}
}
