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

// Package config provides configuration management for the print-safety service.
// It loads configuration from environment variables, and optionally a YAML file,
// with sensible defaults.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	PortKey            = "PORT"
	ReadTimeoutKey     = "READ_TIMEOUT"
	WriteTimeoutKey    = "WRITE_TIMEOUT"
	ShutdownTimeoutKey = "SHUTDOWN_TIMEOUT"
	MaxBodySizeKey     = "MAX_BODY_SIZE"
	MinSizeKey         = "MIN_SIZE"
	MaxSizeKey         = "MAX_SIZE"
	DefaultSizeKey     = "DEFAULT_SIZE"
	MaxSessionsKey     = "MAX_SESSIONS"
	SessionTTLKey      = "SESSION_TTL"
	AllowedOriginsKey  = "ALLOWED_ORIGINS"
	ConfigFileKey      = "CONFIG_FILE"
)

// Config holds application configuration.
type Config struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodySize     int64
	MinSize         int
	MaxSize         int
	DefaultSize     int
	MaxSessions     int
	SessionTTL      time.Duration
	AllowedOrigins  []string
}

var defaults = map[string]any{
	PortKey:            "8080",
	ReadTimeoutKey:     5 * time.Second,
	WriteTimeoutKey:    10 * time.Second,
	ShutdownTimeoutKey: 5 * time.Second,
	MaxBodySizeKey:     int64(524288),
	MinSizeKey:         64,
	MaxSizeKey:         2048,
	DefaultSizeKey:     256,
	MaxSessionsKey:     1024,
	SessionTTLKey:      30 * time.Minute,
	AllowedOriginsKey:  "*",
}

// LoadConfig reads configuration from the environment and, when CONFIG_FILE is
// set, from that YAML file. Environment variables take precedence over the file.
func LoadConfig() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if file := v.GetString(ConfigFileKey); file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Port:            v.GetString(PortKey),
		ReadTimeout:     positiveDuration(v, ReadTimeoutKey),
		WriteTimeout:    positiveDuration(v, WriteTimeoutKey),
		ShutdownTimeout: positiveDuration(v, ShutdownTimeoutKey),
		MaxBodySize:     positiveInt64(v, MaxBodySizeKey),
		MinSize:         positiveInt(v, MinSizeKey),
		MaxSize:         positiveInt(v, MaxSizeKey),
		DefaultSize:     positiveInt(v, DefaultSizeKey),
		MaxSessions:     positiveInt(v, MaxSessionsKey),
		SessionTTL:      positiveDuration(v, SessionTTLKey),
		AllowedOrigins:  parseCommaList(v.GetString(AllowedOriginsKey)),
	}

	if cfg.MinSize > cfg.MaxSize {
		return nil, fmt.Errorf("%s (%d) must not exceed %s (%d)", MinSizeKey, cfg.MinSize, MaxSizeKey, cfg.MaxSize)
	}
	if cfg.DefaultSize < cfg.MinSize || cfg.DefaultSize > cfg.MaxSize {
		return nil, fmt.Errorf("%s must be between %d and %d", DefaultSizeKey, cfg.MinSize, cfg.MaxSize)
	}

	return cfg, nil
}

// positiveDuration returns the configured duration, or the default if it is not positive.
func positiveDuration(v *viper.Viper, key string) time.Duration {
	if d := v.GetDuration(key); d > 0 {
		return d
	}
	return defaults[key].(time.Duration)
}

// positiveInt returns the configured int, or the default if it is not positive.
func positiveInt(v *viper.Viper, key string) int {
	if i := v.GetInt(key); i > 0 {
		return i
	}
	return defaults[key].(int)
}

// positiveInt64 returns the configured int64, or the default if it is not positive.
func positiveInt64(v *viper.Viper, key string) int64 {
	if i := v.GetInt64(key); i > 0 {
		return i
	}
	return defaults[key].(int64)
}

// parseCommaList splits a comma-separated string, trims whitespace, and drops empty entries.
func parseCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
