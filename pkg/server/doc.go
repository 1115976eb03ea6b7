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
// Package server provides the HTTP server used by craftd.
//
// A Server owns a ServeMux with three system endpoints and any number of
// API routes supplied through WithHandler:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until Start is serving and after Shutdown begins
//	GET /metrics  Prometheus exposition
//	GET /         route listing, unless a handler is registered for "/"
//
// API routes run behind a middleware chain that records Prometheus metrics,
// negotiates the API version from the Accept header
// (application/vnd.nvidia.craftgrid.v1+json), assigns an X-Request-Id,
// recovers panics, applies a token bucket rate limit, caps the request body
// and logs the request at debug level.
//
// Handlers report failures with WriteError or WriteErrorFromErr. The latter
// derives the HTTP status and retryable flag from the pkg/errors code:
//
//	if err != nil {
//	    server.WriteErrorFromErr(w, r, err, "match failed", nil)
//	    return
//	}
//
// Usage:
//
//	s := server.New(
//	    server.WithName("craftd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/match": catalog.HandleMatch,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// PORT and SHUTDOWN_TIMEOUT_SECONDS override the listen port and the graceful
// shutdown window.
package server
