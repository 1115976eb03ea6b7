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
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/NVIDIA/craftgrid/pkg/defaults"
)

// RespondJSON writes a JSON response with the given status code and data.
// It buffers the JSON encoding before writing headers to prevent partial responses.
func RespondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("json encoding failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(buf.Bytes()); err != nil {
		// Connection is broken, log but can't recover
		slog.Warn("response write failed", "error", err)
	}
}

const (
	// HttpReaderUserAgent is sent with every request unless overridden.
	HttpReaderUserAgent = "craftgrid-serializer/1.0"

	// HttpReaderDefaultMaxBytes caps the size of a fetched document.
	HttpReaderDefaultMaxBytes int64 = 8 << 20
)

// ErrResponseTooLarge is returned when a response exceeds the reader's limit.
var ErrResponseTooLarge = errors.New("response body exceeds limit")

// HttpReaderOption defines a configuration option for HttpReader.
type HttpReaderOption func(*HttpReader)

// HttpReader fetches documents over HTTP(S).
type HttpReader struct {
	UserAgent string
	MaxBytes  int64
	Client    *http.Client
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) HttpReaderOption {
	return func(r *HttpReader) {
		r.UserAgent = userAgent
	}
}

// WithTotalTimeout sets the client timeout for a whole request.
func WithTotalTimeout(timeout time.Duration) HttpReaderOption {
	return func(r *HttpReader) {
		if timeout > 0 {
			r.Client.Timeout = timeout
		}
	}
}

// WithMaxBytes caps the response size.
func WithMaxBytes(n int64) HttpReaderOption {
	return func(r *HttpReader) {
		r.MaxBytes = n
	}
}

// WithClient replaces the default client, e.g. with an httptest client.
func WithClient(client *http.Client) HttpReaderOption {
	return func(r *HttpReader) {
		if client != nil {
			r.Client = client
		}
	}
}

// NewHttpReader creates an HttpReader with pooled, time-bounded transport
// defaults from pkg/defaults.
func NewHttpReader(options ...HttpReaderOption) *HttpReader {
	r := &HttpReader{
		UserAgent: HttpReaderUserAgent,
		MaxBytes:  HttpReaderDefaultMaxBytes,
		Client: &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newDefaultHTTPTransport(),
		},
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

func newDefaultHTTPTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,
		IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2:     true,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}
}

// ReadWithContext fetches url and returns the body. Non-200 responses and
// bodies larger than MaxBytes are errors.
func (r *HttpReader) ReadWithContext(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("url is empty")
	}
	if r.Client == nil {
		return nil, errors.New("http client is nil")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	if r.UserAgent != "" {
		req.Header.Set("User-Agent", r.UserAgent)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed for url %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch data: status %s", resp.Status)
	}

	body := io.Reader(resp.Body)
	if r.MaxBytes > 0 {
		body = io.LimitReader(resp.Body, r.MaxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	if r.MaxBytes > 0 && int64(len(data)) > r.MaxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrResponseTooLarge, url, r.MaxBytes)
	}
	return data, nil
}
