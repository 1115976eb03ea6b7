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
// Package api wires the recipe catalog into the HTTP server for craftd.
//
// Usage:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - POST /v1/match   - match a grid spec (JSON or YAML body); ?all=true returns every match
//   - GET  /v1/recipes - list the catalog; ?id=<recipe> returns one definition
//
// System endpoints:
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -X POST http://localhost:8080/v1/match \
//	  -H "Content-Type: application/yaml" \
//	  --data-binary $'rows:\n  - "_ coal"\n  - "_ stick"\n'
//
// # Configuration
//
//   - CRAFTGRID_CATALOG: catalog file, directory or URL (default: built-in recipes)
//   - PORT: HTTP server port (default: 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown window
//   - LOG_LEVEL: debug, info, warn, error
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/craftgrid/pkg/api.version=1.0.0'"
package api
