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

package preview

import (
	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/simulation"
)

// View is everything a renderer needs to draw a session. It is rebuilt from
// the session on every call.
type View struct {
	ID         string                      `json:"id"`
	Markup     string                      `json:"markup"`
	State      simulation.State            `json:"state"`
	Before     bool                        `json:"before"`
	Confidence simulation.ConfidenceResult `json:"confidence"`
	Filter     simulation.FilterDescriptor `json:"filter"`
	CSS        CSS                         `json:"css"`
	Controls   []simulation.Control        `json:"controls"`
}

// CSS carries the descriptor rendered as CSS property values. The noise
// layer uses NoiseOpacity both as the gradient alpha and as the layer opacity.
type CSS struct {
	Filter          string  `json:"filter"`
	NoiseBackground string  `json:"noiseBackground,omitempty"`
	NoiseOpacity    float64 `json:"noiseOpacity,omitempty"`
}

// NewCSS renders f as CSS property values.
func NewCSS(f simulation.FilterDescriptor) CSS {
	return CSS{
		Filter:          f.CSSFilter(),
		NoiseBackground: f.NoiseBackground(),
		NoiseOpacity:    f.NoiseOverlayOpacity,
	}
}

// Render derives the view for sess. The confidence always reflects the
// simulated state, even while the before view is shown.
func Render(sess Session) View {
	filter := simulation.ComposeFilter(sess.State, sess.Before)

	return View{
		ID:         sess.ID,
		Markup:     sess.Markup,
		State:      sess.State,
		Before:     sess.Before,
		Confidence: simulation.ComputeConfidence(sess.State),
		Filter:     filter,
		CSS:        NewCSS(filter),
		Controls:   simulation.Controls(sess.State),
	}
}
