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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(524288), cfg.MaxBodySize)
	assert.Equal(t, 64, cfg.MinSize)
	assert.Equal(t, 2048, cfg.MaxSize)
	assert.Equal(t, 256, cfg.DefaultSize)
	assert.Equal(t, 1024, cfg.MaxSessions)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(PortKey, "9090")
	t.Setenv(ReadTimeoutKey, "2s")
	t.Setenv(MaxSessionsKey, "10")
	t.Setenv(SessionTTLKey, "90s")
	t.Setenv(AllowedOriginsKey, "https://a.example, https://b.example,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10, cfg.MaxSessions)
	assert.Equal(t, 90*time.Second, cfg.SessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfigIgnoresNonPositiveValues(t *testing.T) {
	t.Setenv(MaxBodySizeKey, "-1")
	t.Setenv(MinSizeKey, "abc")
	t.Setenv(ShutdownTimeoutKey, "0s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int64(524288), cfg.MaxBodySize)
	assert.Equal(t, 64, cfg.MinSize)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfigRejectsInvertedSizes(t *testing.T) {
	t.Setenv(MinSizeKey, "512")
	t.Setenv(MaxSizeKey, "128")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7070\"\nmax_sessions: 3\n"), 0o600))
	t.Setenv(ConfigFileKey, path)
	t.Setenv(MaxSessionsKey, "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 5, cfg.MaxSessions, "environment overrides the file")
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv(ConfigFileKey, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := LoadConfig()
	assert.Error(t, err)
}
