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

package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrTableNotReadable is returned when a reader is requested for FormatTable.
var ErrTableNotReadable = errors.New("table format does not support deserialization")

// FormatFromPath determines the serialization format from a file extension
// (case-insensitive): .json, .yaml/.yml, .table/.txt. Unknown extensions
// default to JSON. URLs are matched on their path, ignoring any query.
func FormatFromPath(filePath string) Format {
	p := filePath
	if isRemote(p) {
		p, _, _ = strings.Cut(p, "?")
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".table", ".txt":
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// FormatFromContentType maps a Content-Type header to a readable format.
// Anything that is not YAML is read as JSON.
func FormatFromContentType(contentType string) Format {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatJSON
	}
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithStrict makes the Reader reject unknown fields.
func WithStrict() ReaderOption {
	return func(r *Reader) {
		r.strict = true
	}
}

// Reader deserializes JSON or YAML from an io.Reader.
// Close must be called when the Reader was created by NewFileReader.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
	strict bool
}

// NewReader creates a Reader over input. If input is an io.Closer, Close
// closes it.
func NewReader(format Format, input io.Reader, opts ...ReaderOption) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, ErrTableNotReadable
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewFileReader creates a Reader for a local file or an http(s) URL. Remote
// documents are fetched into memory with an HttpReader bound to ctx.
func NewFileReader(ctx context.Context, format Format, filePath string, opts ...ReaderOption) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, ErrTableNotReadable
	}

	if isRemote(filePath) {
		data, err := NewHttpReader().ReadWithContext(ctx, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		return NewReader(format, bytes.NewReader(data), opts...)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return NewReader(format, file, opts...)
}

// Deserialize decodes the next document from the input into v.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return errors.New("reader is nil")
	}
	if r.input == nil {
		return errors.New("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		dec := json.NewDecoder(r.input)
		if r.strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		dec := yaml.NewDecoder(r.input)
		dec.KnownFields(r.strict)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases the underlying input if it is closeable. It is safe to
// call more than once and on a nil Reader.
func (r *Reader) Close() error {
	if r == nil || r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// FromFile loads a local file or http(s) URL into a new T, picking the
// format from the extension.
func FromFile[T any](ctx context.Context, filePath string, opts ...ReaderOption) (*T, error) {
	format := FormatFromPath(filePath)
	slog.Debug("determined file format",
		slog.String("path", filePath),
		slog.String("format", string(format)),
	)

	r, err := NewFileReader(ctx, format, filePath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", filePath, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to deserialize %q: %w", filePath, err)
	}
	return &out, nil
}

// Decode reads a single T from input in the given format.
func Decode[T any](format Format, input io.Reader, opts ...ReaderOption) (*T, error) {
	r, err := NewReader(format, input, opts...)
	if err != nil {
		return nil, err
	}

	var out T
	if err := r.Deserialize(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func isRemote(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}
