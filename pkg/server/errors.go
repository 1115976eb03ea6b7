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
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"time"

	cnserrors "github.com/NVIDIA/craftgrid/pkg/errors"
	"github.com/NVIDIA/craftgrid/pkg/serializer"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Code      string         `json:"code" yaml:"code"`
	Message   string         `json:"message" yaml:"message"`
	Details   map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	RequestID string         `json:"requestId" yaml:"requestId"`
	Timestamp time.Time      `json:"timestamp" yaml:"timestamp"`
	Retryable bool           `json:"retryable" yaml:"retryable"`
}

// WriteError writes an ErrorResponse with the given status and code.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code cnserrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as an ErrorResponse. A StructuredError in the
// chain supplies the code, message and context; anything else is reported as
// an internal error with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	code := cnserrors.ErrCodeInternal
	message := fallbackMessage
	var ctxDetails map[string]any

	var se *cnserrors.StructuredError
	if errors.As(err, &se) {
		code = se.Code
		if se.Message != "" {
			message = se.Message
		}
		ctxDetails = se.Context
	}

	var cause error
	switch {
	case se != nil:
		cause = se.Cause
	case err != nil:
		cause = err
	}

	details := mergeDetails(ctxDetails, extraDetails)
	if cause != nil {
		details = mergeDetails(details, map[string]any{"error": cause.Error()})
	}

	status := HTTPStatusFromCode(code)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"requestID", r.Context().Value(contextKeyRequestID),
			"code", string(code),
			"error", err,
		)
	}

	WriteError(w, r, status, code, message, retryableFromCode(code), details)
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code cnserrors.ErrorCode) int {
	switch code {
	case cnserrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case cnserrors.ErrCodeMalformedPattern, cnserrors.ErrCodeInvalidIngredient:
		return http.StatusUnprocessableEntity
	case cnserrors.ErrCodeNotFound:
		return http.StatusNotFound
	case cnserrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case cnserrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case cnserrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case cnserrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code cnserrors.ErrorCode) bool {
	switch code {
	case cnserrors.ErrCodeTimeout,
		cnserrors.ErrCodeUnavailable,
		cnserrors.ErrCodeRateLimitExceeded,
		cnserrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map holding base overlaid with extra, or nil
// when both are empty.
func mergeDetails(base, extra map[string]any) map[string]any {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	out := make(map[string]any, len(base)+len(extra))
	maps.Copy(out, base)
	maps.Copy(out, extra)
	return out
}
