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
package recipe

import (
	"github.com/NVIDIA/craftgrid/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK        = "ok"
	resultDuplicate = "duplicate"
	resultRejected  = "rejected"
	resultMatched   = "matched"
	resultNoMatch   = "no_match"
	resultCanceled  = "canceled"
)

var (
	registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "craftgrid_recipe_registrations_total",
			Help: "Recipe registrations by result",
		},
		[]string{"result"},
	)

	matchAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "craftgrid_match_attempts_total",
			Help: "Catalog match attempts by result",
		},
		[]string{"result"},
	)

	matchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "craftgrid_match_duration_seconds",
			Help:    "Duration of a catalog-wide match in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		},
	)
)

// resultLabel turns a registration error into a bounded label value.
func resultLabel(err error) string {
	switch errors.CodeOf(err) {
	case errors.ErrCodeMalformedPattern:
		return "malformed_pattern"
	case errors.ErrCodeInvalidIngredient:
		return "invalid_ingredient"
	default:
		return resultRejected
	}
}
