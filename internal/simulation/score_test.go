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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeConfidenceDefaults(t *testing.T) {
	got := ComputeConfidence(NewState())
	assert.Equal(t, 100.0, got.Score)
	assert.Equal(t, LabelHigh, got.Label)
}

func TestComputeConfidenceWorstCase(t *testing.T) {
	got := ComputeConfidence(State{Blur: 4, Contrast: 100, Noise: 30})
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, LabelLow, got.Label)
}

func TestComputeConfidencePresets(t *testing.T) {
	tests := []struct {
		preset string
		score  float64
		label  Label
	}{
		{"Print Safe", 100 - 9 - 2.4 - 6, LabelHigh},
		{"High Contrast", 100 - 18, LabelHigh},
		{"Noisy", 100 - 27 - 14.4 - 3, LabelMedium},
		{"Blurred", 100 - 54 - 9.6 - 6, LabelLow},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			p, ok := LookupPreset(tt.preset)
			assert.True(t, ok)
			got := ComputeConfidence(p.State)
			assert.InDelta(t, tt.score, got.Score, 1e-9)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestComputeConfidenceSymmetricContrast(t *testing.T) {
	low := ComputeConfidence(State{Contrast: 80})
	high := ComputeConfidence(State{Contrast: 120})
	assert.InDelta(t, low.Score, high.Score, 1e-9)
	assert.InDelta(t, 88.0, low.Score, 1e-9)
}

func TestComputeConfidenceStaysInRange(t *testing.T) {
	for blur := BlurRange.Min; blur <= BlurRange.Max; blur += BlurRange.Step {
		for contrast := ContrastRange.Min; contrast <= ContrastRange.Max; contrast += ContrastRange.Step {
			for noise := NoiseRange.Min; noise <= NoiseRange.Max; noise++ {
				got := ComputeConfidence(State{Blur: blur, Contrast: contrast, Noise: noise})
				if got.Score < 0 || got.Score > 100 {
					t.Fatalf("score %v out of range for blur=%v contrast=%v noise=%v", got.Score, blur, contrast, noise)
				}
				if got.Label != LabelFor(got.Score) {
					t.Fatalf("label %s does not match score %v", got.Label, got.Score)
				}
			}
		}
	}
}

func TestLabelForThresholds(t *testing.T) {
	assert.Equal(t, LabelHigh, LabelFor(75.1))
	assert.Equal(t, LabelMedium, LabelFor(75))
	assert.Equal(t, LabelMedium, LabelFor(50.1))
	assert.Equal(t, LabelLow, LabelFor(50))
	assert.Equal(t, LabelLow, LabelFor(0))
}
