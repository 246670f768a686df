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

package qr

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() Service {
	return NewService(zap.NewNop(), 64, 1024)
}

func TestGeneratePNG(t *testing.T) {
	png, err := newTestService().Generate([]byte("https://wso2.com"), 128)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestGenerateValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Generate(nil, 128)
	assert.True(t, errors.Is(err, ErrEmptyData))

	_, err = svc.Generate([]byte("x"), 32)
	assert.True(t, errors.Is(err, ErrInvalidSize))

	_, err = svc.GenerateSVG([]byte("x"), 4096)
	assert.True(t, errors.Is(err, ErrInvalidSize))
}

func TestGenerateDataTooLong(t *testing.T) {
	svc := newTestService()
	data := []byte(strings.Repeat("A", 3500))

	_, err := svc.Generate(data, 128)
	assert.True(t, errors.Is(err, ErrDataTooLong))

	_, err = svc.GenerateSVG(data, 128)
	assert.True(t, errors.Is(err, ErrDataTooLong))
}

func TestGenerateSVG(t *testing.T) {
	svg, err := newTestService().GenerateSVG([]byte("hello"), 256)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `width="256" height="256"`)
	assert.Contains(t, svg, "h1v1h-1z")
}
