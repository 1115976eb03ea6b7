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
package server

import (
	"mime"
	"net/http"
	"slices"
	"strings"
)

const (
	// DefaultAPIVersion is used when the client does not ask for one.
	DefaultAPIVersion = "v1"

	// vendorMediaPrefix precedes the version in a vendor media type,
	// e.g. application/vnd.nvidia.craftgrid.v1+json.
	vendorMediaPrefix = "application/vnd.nvidia.craftgrid."
)

var supportedAPIVersions = []string{"v1"}

// negotiateAPIVersion picks the first supported version named in the Accept
// header, falling back to DefaultAPIVersion.
func negotiateAPIVersion(r *http.Request) string {
	for part := range strings.SplitSeq(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		rest, ok := strings.CutPrefix(mediaType, vendorMediaPrefix)
		if !ok {
			continue
		}
		version, _, _ := strings.Cut(rest, "+")
		if isValidAPIVersion(version) {
			return version
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(version string) bool {
	return slices.Contains(supportedAPIVersions, version)
}

// SetAPIVersionHeader reports the negotiated version to the client.
func SetAPIVersionHeader(w http.ResponseWriter, version string) {
	w.Header().Set("X-API-Version", version)
}
