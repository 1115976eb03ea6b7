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
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NVIDIA/craftgrid/pkg/defaults"
)

type testData struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func TestRespondJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := testData{Message: "matched", Code: 200}

	RespondJSON(w, http.StatusOK, data)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", ct)
	}

	var result testData
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if result != data {
		t.Errorf("got %+v, want %+v", result, data)
	}
}

func TestRespondJSON_StatusCodes(t *testing.T) {
	for _, code := range []int{http.StatusCreated, http.StatusBadRequest, http.StatusServiceUnavailable} {
		w := httptest.NewRecorder()
		RespondJSON(w, code, testData{Code: code})
		if w.Code != code {
			t.Errorf("expected status %d, got %d", code, w.Code)
		}
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	w := httptest.NewRecorder()

	// Channels cannot be encoded; the handler must not write a partial 200.
	RespondJSON(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestNewHttpReader_Defaults(t *testing.T) {
	r := NewHttpReader()

	if r.UserAgent != HttpReaderUserAgent {
		t.Errorf("UserAgent = %q", r.UserAgent)
	}
	if r.MaxBytes != HttpReaderDefaultMaxBytes {
		t.Errorf("MaxBytes = %d", r.MaxBytes)
	}
	if r.Client.Timeout != defaults.HTTPClientTimeout {
		t.Errorf("Client.Timeout = %v", r.Client.Timeout)
	}
	if _, ok := r.Client.Transport.(*http.Transport); !ok {
		t.Errorf("expected *http.Transport, got %T", r.Client.Transport)
	}
}

func TestNewHttpReader_WithOptions(t *testing.T) {
	custom := &http.Client{}
	r := NewHttpReader(
		WithUserAgent("craftctl/test"),
		WithMaxBytes(10),
		WithClient(custom),
		WithTotalTimeout(3*time.Second),
	)

	if r.UserAgent != "craftctl/test" || r.MaxBytes != 10 {
		t.Errorf("options not applied: %+v", r)
	}
	if r.Client != custom || custom.Timeout != 3*time.Second {
		t.Error("custom client should be used and receive the timeout")
	}
}

func TestHttpReader_ReadWithContext(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("hello"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.Error(w, "nope", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	r := NewHttpReader(WithClient(srv.Client()), WithMaxBytes(32))

	data, err := r.ReadWithContext(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("ReadWithContext error: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("body = %q", data)
	}
	if gotUA != HttpReaderUserAgent {
		t.Errorf("User-Agent = %q", gotUA)
	}

	if _, err := r.ReadWithContext(context.Background(), srv.URL+"/big"); !errors.Is(err, ErrResponseTooLarge) {
		t.Errorf("expected ErrResponseTooLarge, got %v", err)
	}
	if _, err := r.ReadWithContext(context.Background(), srv.URL+"/fail"); err == nil {
		t.Error("expected error for 500")
	}
	if _, err := r.ReadWithContext(context.Background(), ""); err == nil {
		t.Error("expected error for empty url")
	}
}

func TestHttpReader_ReadWithContext_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewHttpReader(WithClient(srv.Client())).ReadWithContext(ctx, srv.URL); err == nil {
		t.Error("expected error for canceled context")
	}
}
