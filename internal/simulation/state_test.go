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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateDefaults(t *testing.T) {
	s := NewState()
	assert.Equal(t, State{Blur: 0, Contrast: 100, Noise: 0}, s)
}

func TestSettersClamp(t *testing.T) {
	tests := []struct {
		name string
		set  func(*State, float64) float64
		in   float64
		want float64
	}{
		{"blur above max", (*State).SetBlur, 10, 4},
		{"blur below min", (*State).SetBlur, -1, 0},
		{"blur in range", (*State).SetBlur, 2.5, 2.5},
		{"blur NaN", (*State).SetBlur, math.NaN(), 0},
		{"contrast below min", (*State).SetContrast, 50, 70},
		{"contrast above max", (*State).SetContrast, 200, 140},
		{"contrast in range", (*State).SetContrast, 95, 95},
		{"noise above max", (*State).SetNoise, 31, 30},
		{"noise below min", (*State).SetNoise, -5, 0},
		{"noise off step", (*State).SetNoise, 12, 12},
		{"noise +Inf", (*State).SetNoise, math.Inf(1), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			got := tt.set(&s, tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetterStoresReturnedValue(t *testing.T) {
	s := NewState()
	assert.Equal(t, 4.0, s.SetBlur(10))
	assert.Equal(t, 70.0, s.SetContrast(50))
	assert.Equal(t, State{Blur: 4, Contrast: 70, Noise: 0}, s)
}

func TestClamped(t *testing.T) {
	s := State{Blur: 9, Contrast: 10, Noise: 99}
	assert.Equal(t, State{Blur: 4, Contrast: 70, Noise: 30}, s.Clamped())
	assert.Equal(t, 9.0, s.Blur, "Clamped must not modify the receiver")
}

func TestRangePercent(t *testing.T) {
	assert.Equal(t, 0.0, BlurRange.Percent(0))
	assert.Equal(t, 50.0, BlurRange.Percent(2))
	assert.Equal(t, 100.0, BlurRange.Percent(8))
	assert.InDelta(t, 42.857, ContrastRange.Percent(100), 0.001)
	assert.True(t, NoiseRange.Contains(30))
	assert.False(t, NoiseRange.Contains(30.5))
}

func TestControls(t *testing.T) {
	controls := Controls(State{Blur: 1.5, Contrast: 95, Noise: 12})
	if assert.Len(t, controls, 3) {
		assert.Equal(t, "blur", controls[0].Name)
		assert.Equal(t, "1.5 px", controls[0].Display)
		assert.Equal(t, "95%", controls[1].Display)
		assert.Equal(t, "12%", controls[2].Display)
		assert.InDelta(t, 40.0, controls[2].Percent, 1e-9)
	}
}
