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
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/craftgrid/pkg/defaults"
	"golang.org/x/time/rate"
)

const (
	// EnvPort overrides the listen port.
	EnvPort = "PORT"
	// EnvShutdownTimeout overrides the graceful shutdown window, in seconds.
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers are the API routes served behind the middleware chain,
	// keyed by ServeMux pattern.
	Handlers map[string]http.HandlerFunc

	Address string
	Port    int

	RateLimit      rate.Limit // requests per second
	RateLimitBurst int

	// MaxRequestBytes caps request bodies read by API handlers.
	MaxRequestBytes int64

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with defaults and environment overrides applied.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Port:              8080,
		RateLimit:         100,
		RateLimitBurst:    200,
		MaxRequestBytes:   defaults.MaxRequestBodyBytes,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 && port < 65536 {
			cfg.Port = port
		}
	}

	// Lets operators match the pod's termination grace period.
	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}
