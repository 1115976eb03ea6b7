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

package header

import (
	"errors"
	"testing"
	"time"

	"github.com/NVIDIA/craftgrid/pkg/version"
)

func TestKind_IsValid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{name: "RecipeCatalog is valid", kind: KindRecipeCatalog, want: true},
		{name: "MatchReport is valid", kind: KindMatchReport, want: true},
		{name: "Empty kind is invalid", kind: Kind(""), want: false},
		{name: "Case sensitive", kind: Kind("recipecatalog"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("Kind.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindMatchReport),
		WithAPIVersion(APIVersion),
		WithMetadata("recipe", "torch"),
	)

	if h.Kind != KindMatchReport {
		t.Errorf("Kind = %v, want %v", h.Kind, KindMatchReport)
	}
	if h.APIVersion != APIVersion {
		t.Errorf("APIVersion = %v", h.APIVersion)
	}
	if h.Metadata["recipe"] != "torch" {
		t.Errorf("Metadata = %v", h.Metadata)
	}
}

func TestWithMetadataInitializesMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	if h.Metadata["k"] != "v" {
		t.Errorf("Metadata = %v", h.Metadata)
	}
}

func TestHeader_Init(t *testing.T) {
	h := New(WithMetadata("stale", "x"))
	h.Init(KindMatchReport, "v1.4.0")

	if h.Kind != KindMatchReport || h.APIVersion != APIVersion {
		t.Errorf("Init() header = %+v", h)
	}
	if _, ok := h.Metadata["stale"]; ok {
		t.Error("Init() should reset metadata")
	}
	if h.Metadata[KeyVersion] != "v1.4.0" {
		t.Errorf("version = %q", h.Metadata[KeyVersion])
	}
	if h.Metadata[KeySchemaVersion] != SchemaVersion.String() {
		t.Errorf("schema-version = %q", h.Metadata[KeySchemaVersion])
	}
	if _, err := time.Parse(time.RFC3339, h.Metadata[KeyTimestamp]); err != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", h.Metadata[KeyTimestamp], err)
	}

	h.Init(KindMatchReport, "")
	if _, ok := h.Metadata[KeyVersion]; ok {
		t.Error("empty writer version should be omitted")
	}
}

func TestHeader_Validate(t *testing.T) {
	tests := []struct {
		name    string
		header  Header
		wantErr bool
		isErr   error
	}{
		{name: "empty header", header: Header{}},
		{
			name:   "complete",
			header: Header{Kind: KindRecipeCatalog, APIVersion: APIVersion, Metadata: map[string]string{KeySchemaVersion: "1.0"}},
		},
		{name: "wrong kind", header: Header{Kind: KindMatchReport}, wantErr: true},
		{name: "wrong apiVersion", header: Header{APIVersion: "v2"}, wantErr: true},
		{
			name:    "newer schema major",
			header:  Header{Metadata: map[string]string{KeySchemaVersion: "2.0.0"}},
			wantErr: true,
			isErr:   version.ErrIncompatible,
		},
		{
			name:    "unparsable schema",
			header:  Header{Metadata: map[string]string{KeySchemaVersion: "latest"}},
			wantErr: true,
			isErr:   version.ErrNonNumeric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.header.Validate(KindRecipeCatalog)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.isErr != nil && !errors.Is(err, tt.isErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.isErr)
			}
		})
	}
}
