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

import "strings"

// Preset is a named, fixed combination of simulation values.
type Preset struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	State State  `json:"state"`
}

var catalog = []Preset{
	{Name: "Print Safe", Slug: "print-safe", State: State{Blur: 0.5, Contrast: 110, Noise: 2}},
	{Name: "High Contrast", Slug: "high-contrast", State: State{Blur: 0, Contrast: 130, Noise: 0}},
	{Name: "Noisy", Slug: "noisy", State: State{Blur: 1.5, Contrast: 95, Noise: 12}},
	{Name: "Blurred", Slug: "blurred", State: State{Blur: 3, Contrast: 90, Noise: 8}},
}

// Presets returns a copy of the catalog in display order.
func Presets() []Preset {
	out := make([]Preset, len(catalog))
	copy(out, catalog)
	return out
}

// LookupPreset finds a preset by display name or slug.
func LookupPreset(name string) (Preset, bool) {
	key := strings.TrimSpace(name)
	for _, p := range catalog {
		if p.Name == key || p.Slug == key {
			return p, true
		}
	}
	return Preset{}, false
}
