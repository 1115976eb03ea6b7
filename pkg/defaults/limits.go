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

package defaults

// Input limits.
const (
	// MaxGridWidth is the widest grid accepted from requests and files.
	MaxGridWidth = 16

	// MaxGridHeight is the tallest grid accepted from requests and files.
	MaxGridHeight = 16

	// MaxRequestBodyBytes caps match request bodies.
	MaxRequestBodyBytes = 64 << 10

	// MaxCatalogRecipes caps the number of recipes a single catalog document
	// may declare.
	MaxCatalogRecipes = 10000
)
