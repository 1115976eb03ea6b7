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

// Package defaults provides centralized configuration constants for craftgrid.
//
// This package defines timeout values and size limits used across the
// codebase. Centralizing these values ensures consistency and makes tuning
// easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Handler timeouts: For HTTP request processing
//   - Catalog timeouts: For loading recipe catalogs from disk or HTTP
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound HTTP requests
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/craftgrid/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
//	defer cancel()
//
// # Limits
//
// MaxGridWidth and MaxGridHeight bound the grids accepted from requests and
// input files. The matcher itself has no limit; it is bounded by the grid it
// is given.
package defaults
