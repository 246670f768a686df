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

// Package simulation scores how well a printed visual code survives blur,
// contrast and noise degradation, and describes the visual filter a renderer
// should apply to preview that degradation.
package simulation

import (
	"fmt"
	"math"
)

// Range describes the valid interval and control granularity of a parameter.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

var (
	BlurRange     = Range{Min: 0, Max: 4, Step: 0.5}
	ContrastRange = Range{Min: 70, Max: 140, Step: 5}
	NoiseRange    = Range{Min: 0, Max: 30, Step: 5}
)

// Clamp returns v limited to [Min, Max]. NaN clamps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Percent returns the position of v along the range as 0-100.
func (r Range) Percent(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return (r.Clamp(v) - r.Min) / (r.Max - r.Min) * 100
}

// State holds the three simulation controls. The zero value is not the
// default state; use NewState.
type State struct {
	Blur     float64 `json:"blur"`
	Contrast float64 `json:"contrast"`
	Noise    float64 `json:"noise"`
}

const (
	DefaultBlur     = 0
	DefaultContrast = 100
	DefaultNoise    = 0
)

// NewState returns the undistorted default state.
func NewState() State {
	return State{Blur: DefaultBlur, Contrast: DefaultContrast, Noise: DefaultNoise}
}

// SetBlur clamps v into BlurRange, stores it and returns the stored value.
func (s *State) SetBlur(v float64) float64 {
	s.Blur = BlurRange.Clamp(v)
	return s.Blur
}

// SetContrast clamps v into ContrastRange, stores it and returns the stored value.
func (s *State) SetContrast(v float64) float64 {
	s.Contrast = ContrastRange.Clamp(v)
	return s.Contrast
}

// SetNoise clamps v into NoiseRange, stores it and returns the stored value.
func (s *State) SetNoise(v float64) float64 {
	s.Noise = NoiseRange.Clamp(v)
	return s.Noise
}

// Clamped returns a copy of s with every field clamped into its range.
func (s State) Clamped() State {
	out := s
	out.SetBlur(s.Blur)
	out.SetContrast(s.Contrast)
	out.SetNoise(s.Noise)
	return out
}

// ApplyPreset overwrites all three values with the named preset. On an
// unknown name the state is left untouched and an *UnknownPresetError is
// returned.
func (s *State) ApplyPreset(name string) (State, error) {
	p, ok := LookupPreset(name)
	if !ok {
		return *s, &UnknownPresetError{Name: name}
	}
	*s = p.State
	return *s, nil
}

// Control describes one parameter for a slider or number input.
type Control struct {
	Name    string  `json:"name"`
	Range   Range   `json:"range"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
	Display string  `json:"display"`
}

// Controls lists the blur, contrast and noise controls for s in display order.
func Controls(s State) []Control {
	return []Control{
		{
			Name:    "blur",
			Range:   BlurRange,
			Value:   s.Blur,
			Percent: BlurRange.Percent(s.Blur),
			Display: fmt.Sprintf("%.1f px", s.Blur),
		},
		{
			Name:    "contrast",
			Range:   ContrastRange,
			Value:   s.Contrast,
			Percent: ContrastRange.Percent(s.Contrast),
			Display: fmt.Sprintf("%g%%", s.Contrast),
		},
		{
			Name:    "noise",
			Range:   NoiseRange,
			Value:   s.Noise,
			Percent: NoiseRange.Percent(s.Noise),
			Display: fmt.Sprintf("%g%%", s.Noise),
		},
	}
}
