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
// Package cli implements craftctl, the command line client for shaped recipe
// catalogs.
//
// # Commands
//
// match - match a grid against a catalog:
//
//	craftctl match --catalog recipes/ --row "_ coal" --row "_ stick"
//	craftctl match --grid grid.yaml --all --format json
//
// Prints a MatchReport with the matching recipe (or every match with --all)
// and where it was found in the grid.
//
// lint - validate a catalog:
//
//	craftctl lint --catalog recipes/ --fail-on-error
//
// Lists every recipe that could not be registered. With --fail-on-error the
// command exits non-zero when there is at least one.
//
// shape - inspect a pattern:
//
//	craftctl shape --pattern=A- --pattern=-A --mirrored
//
// # Global Flags
//
//	--log-level    debug, info, warn, error (env LOG_LEVEL)
//
// Every command also accepts --output/-o (default stdout) and --format/-t
// (yaml, json, table; default yaml). Without --catalog, CRAFTGRID_CATALOG is
// used, and without either the built-in recipes are loaded.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/craftgrid/pkg/cli.version=1.0.0'"
package cli
