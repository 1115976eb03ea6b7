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

// Package header defines the Kind/APIVersion/Metadata envelope shared by
// craftgrid documents: recipe catalogs read from disk and match reports
// written by the CLI and the API server.
package header

import (
	"fmt"
	"time"

	"github.com/NVIDIA/craftgrid/pkg/version"
)

// Kind represents the type of craftgrid document.
type Kind string

const (
	// KindRecipeCatalog is a document declaring shaped recipes.
	KindRecipeCatalog Kind = "RecipeCatalog"
	// KindMatchReport is a document describing the result of a match attempt.
	KindMatchReport Kind = "MatchReport"
)

const (
	// APIVersion is the only apiVersion this build reads and writes.
	APIVersion = "craftgrid.nvidia.com/v1alpha1"

	// KeyTimestamp is the metadata key holding the RFC 3339 creation time.
	KeyTimestamp = "timestamp"
	// KeyVersion is the metadata key holding the version of the writer.
	KeyVersion = "version"
	// KeySchemaVersion is the metadata key holding the document schema version.
	KeySchemaVersion = "schema-version"
)

// SchemaVersion is the newest document schema this build understands.
var SchemaVersion = version.NewVersion(1, 0, 0)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindRecipeCatalog, KindMatchReport:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(apiVersion string) Option {
	return func(h *Header) {
		h.APIVersion = apiVersion
	}
}

// New creates a new Header instance with the provided functional options.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header contains the document envelope. It follows Kubernetes-style
// resource conventions with Kind, APIVersion, and Metadata fields.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init resets the header for a document written now by a binary at the
// given version.
func (h *Header) Init(kind Kind, writerVersion string) {
	h.Kind = kind
	h.APIVersion = APIVersion
	h.Metadata = map[string]string{
		KeyTimestamp:     time.Now().UTC().Format(time.RFC3339),
		KeySchemaVersion: SchemaVersion.String(),
	}
	if writerVersion != "" {
		h.Metadata[KeyVersion] = writerVersion
	}
}

// Validate checks that the header describes a readable document of the
// expected kind. An empty kind or apiVersion is accepted for hand-written
// documents; a missing schema-version is treated as the current one.
func (h *Header) Validate(want Kind) error {
	if h.Kind != "" && h.Kind != want {
		return fmt.Errorf("unexpected document kind %q, want %q", h.Kind, want)
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersion)
	}
	if s := h.Metadata[KeySchemaVersion]; s != "" {
		if err := version.CheckCompatible(s, SchemaVersion); err != nil {
			return err
		}
	}
	return nil
}
