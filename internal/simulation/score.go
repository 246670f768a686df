// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package simulation

import "math"

// Label is the qualitative scan confidence bucket.
type Label string

const (
	LabelHigh   Label = "High"
	LabelMedium Label = "Medium"
	LabelLow    Label = "Low"
)

// Penalty weights applied per unit of each distortion.
const (
	blurPenalty     = 18.0
	noisePenalty    = 1.2
	contrastPenalty = 0.6
	baseline        = 100.0
)

// ConfidenceResult is the predicted scannability of a state.
type ConfidenceResult struct {
	Score float64 `json:"score"`
	Label Label   `json:"label"`
}

// ComputeConfidence scores s from 0 to 100. Contrast is penalised for
// deviation from 100% in either direction.
func ComputeConfidence(s State) ConfidenceResult {
	score := baseline -
		s.Blur*blurPenalty -
		s.Noise*noisePenalty -
		math.Abs(baseline-s.Contrast)*contrastPenalty
	score = clamp(score, 0, 100)

	return ConfidenceResult{Score: score, Label: LabelFor(score)}
}

// LabelFor maps a score to its label. Both thresholds are exclusive.
func LabelFor(score float64) Label {
	switch {
	case score > 75:
		return LabelHigh
	case score > 50:
		return LabelMedium
	default:
		return LabelLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
