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

package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// NewRouter registers every endpoint and wraps the router with request
// logging and CORS for the browser preview.
func NewRouter(h *Handler, logger *zap.Logger, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(RequestLoggingMiddleware(logger))

	r.Handle("/generate", MethodMiddleware(http.MethodPost)(http.HandlerFunc(h.Generate)))
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/presets", h.ListPresets).Methods(http.MethodGet)
	r.HandleFunc("/confidence", h.Confidence).Methods(http.MethodPost)

	s := r.PathPrefix("/sessions").Subrouter()
	s.HandleFunc("", h.CreateSession).Methods(http.MethodPost)
	s.HandleFunc("/{id}", h.GetSession).Methods(http.MethodGet)
	s.HandleFunc("/{id}", h.UpdateSession).Methods(http.MethodPatch)
	s.HandleFunc("/{id}", h.DeleteSession).Methods(http.MethodDelete)
	s.HandleFunc("/{id}/preset", h.ApplyPreset).Methods(http.MethodPost)
	s.HandleFunc("/{id}/toggle", h.ToggleBefore).Methods(http.MethodPost)

	logger.Debug("HTTP routes registered", zap.Strings("endpoints", []string{
		"/generate", "/health", "/presets", "/confidence", "/sessions",
	}))

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(r)
}
