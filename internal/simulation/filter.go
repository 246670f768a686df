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
	"fmt"
	"strconv"
)

// FilterDescriptor is the set of visual effects a renderer applies to
// preview a state. It is derived data and should be recomputed on every
// state change.
type FilterDescriptor struct {
	BlurPx              float64 `json:"blurPx"`
	ContrastPercent     float64 `json:"contrastPercent"`
	NoiseOverlayOpacity float64 `json:"noiseOverlayOpacity,omitempty"`
}

// Identity is the undistorted descriptor used for the "before" view.
var Identity = FilterDescriptor{BlurPx: 0, ContrastPercent: 100, NoiseOverlayOpacity: 0}

// ComposeFilter maps s to a descriptor. In before mode the identity
// descriptor is returned regardless of s.
func ComposeFilter(s State, before bool) FilterDescriptor {
	if before {
		return Identity
	}

	fd := FilterDescriptor{
		BlurPx:          s.Blur,
		ContrastPercent: s.Contrast,
	}
	if s.Noise > 0 {
		fd.NoiseOverlayOpacity = s.Noise / 100
	}
	return fd
}

// HasNoiseOverlay reports whether the renderer should draw a noise layer.
func (f FilterDescriptor) HasNoiseOverlay() bool {
	return f.NoiseOverlayOpacity > 0
}

// IsIdentity reports whether f leaves the image unchanged.
func (f FilterDescriptor) IsIdentity() bool {
	return f == Identity
}

// CSSFilter renders the blur and contrast parts as a CSS filter value.
func (f FilterDescriptor) CSSFilter() string {
	if f.IsIdentity() {
		return "none"
	}
	return fmt.Sprintf("blur(%spx) contrast(%s%%)", formatNumber(f.BlurPx), formatNumber(f.ContrastPercent))
}

// NoiseBackground renders the noise overlay as a CSS background image, or
// "" when there is no overlay.
func (f FilterDescriptor) NoiseBackground() string {
	if !f.HasNoiseOverlay() {
		return ""
	}
	o := formatNumber(f.NoiseOverlayOpacity)
	return fmt.Sprintf("linear-gradient(rgba(0,0,0,%s), rgba(0,0,0,%s))", o, o)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
