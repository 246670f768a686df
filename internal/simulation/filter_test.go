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

func TestComposeFilterBeforeModeIsIdentity(t *testing.T) {
	states := []State{
		NewState(),
		{Blur: 4, Contrast: 140, Noise: 30},
		{Blur: 1.5, Contrast: 95, Noise: 12},
	}
	for _, s := range states {
		got := ComposeFilter(s, true)
		assert.Equal(t, FilterDescriptor{BlurPx: 0, ContrastPercent: 100, NoiseOverlayOpacity: 0}, got)
		assert.True(t, got.IsIdentity())
		assert.Equal(t, "none", got.CSSFilter())
		assert.Empty(t, got.NoiseBackground())
	}
}

func TestComposeFilterAfterMode(t *testing.T) {
	got := ComposeFilter(State{Blur: 1.5, Contrast: 95, Noise: 12}, false)
	assert.Equal(t, FilterDescriptor{BlurPx: 1.5, ContrastPercent: 95, NoiseOverlayOpacity: 0.12}, got)
	assert.True(t, got.HasNoiseOverlay())
	assert.Equal(t, "blur(1.5px) contrast(95%)", got.CSSFilter())
	assert.Equal(t, "linear-gradient(rgba(0,0,0,0.12), rgba(0,0,0,0.12))", got.NoiseBackground())
}

func TestComposeFilterOmitsOverlayWithoutNoise(t *testing.T) {
	got := ComposeFilter(State{Blur: 2, Contrast: 120, Noise: 0}, false)
	assert.False(t, got.HasNoiseOverlay())
	assert.Zero(t, got.NoiseOverlayOpacity)
	assert.Empty(t, got.NoiseBackground())
	assert.Equal(t, "blur(2px) contrast(120%)", got.CSSFilter())
}
