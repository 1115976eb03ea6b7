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
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/craftgrid/pkg/serializer"
)

// EnvCatalog names the catalog source when --catalog is not given.
const EnvCatalog = "CRAFTGRID_CATALOG"

// Flags carry parse state, so every command gets its own instances.

func outputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func catalogFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "catalog file, directory or http(s) URL (default: built-in recipes)",
		Sources: cli.EnvVars(EnvCatalog),
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format %q, supported: %s",
			f, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// writeOutput serializes v to --output (or stdout) in --format.
func writeOutput(ctx context.Context, cmd *cli.Command, v any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, v)
}
