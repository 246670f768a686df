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

// Package http provides the HTTP transport layer for the print-safety service.
package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/preview"
	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/qr"
)

// Options bounds request handling.
type Options struct {
	MaxBodySize int64
	MinSize     int
	MaxSize     int
	DefaultSize int
}

type Handler struct {
	svc    qr.Service
	store  *preview.Store
	logger *zap.Logger
	opts   Options
}

// NewHandler creates the HTTP handler for QR generation and preview sessions.
func NewHandler(svc qr.Service, store *preview.Store, logger *zap.Logger, opts Options) *Handler {
	return &Handler{
		svc:    svc,
		store:  store,
		logger: logger,
		opts:   opts,
	}
}

// Generate handles POST /generate?size={pixels} requests to create QR codes.
// Accepts raw text/URL in body, returns PNG image.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	if len(body) == 0 {
		h.logger.Warn("Empty request body received", zap.String("remote_addr", r.RemoteAddr))
		writeError(w, http.StatusBadRequest, "Request body is empty")
		return
	}

	size, err := h.parseSize(r.URL.Query().Get("size"))
	if err != nil {
		h.logger.Warn("Invalid size parameter",
			zap.String("size", r.URL.Query().Get("size")),
			zap.String("remote_addr", r.RemoteAddr),
		)
		writeError(w, http.StatusBadRequest, "Invalid size parameter: "+err.Error())
		return
	}

	png, err := h.svc.Generate(body, size)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(png); err != nil {
		h.logger.Error("failed to write response",
			zap.Error(err),
			zap.Int("png_size", len(png)),
			zap.String("remote_addr", r.RemoteAddr),
		)
		return
	}

	h.logger.Info("QR code request completed successfully",
		zap.Int("data_length", len(body)),
		zap.Int("size", size),
		zap.Int("output_size", len(png)),
	)
}

// HealthCheck handles GET /health requests for liveness/readiness probes.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.store.Len(),
	})
}

// readBody enforces the body size limit and reports whether the caller may continue.
func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	// Fast fail for obvious oversized requests
	if r.ContentLength > h.opts.MaxBodySize {
		h.logger.Warn("Request body too large (ContentLength check)",
			zap.Int64("content_length", r.ContentLength),
			zap.Int64("max_allowed", h.opts.MaxBodySize),
			zap.String("remote_addr", r.RemoteAddr),
		)
		writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return nil, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxBodySize)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r.Body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Warn("Request body too large",
				zap.Int64("max_allowed", h.opts.MaxBodySize),
				zap.String("remote_addr", r.RemoteAddr),
			)
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return nil, false
		}
		h.logger.Error("failed to read request body", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		writeError(w, http.StatusInternalServerError, "Failed to read request body")
		return nil, false
	}

	return buf.Bytes(), true
}

// decodeJSON reads the body into v. An empty body leaves v untouched.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	body, ok := h.readBody(w, r)
	if !ok {
		return false
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return true
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		h.logger.Debug("Invalid JSON body", zap.Error(err), zap.String("path", r.URL.Path))
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}

	// Exactly one JSON value is accepted
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		h.logger.Debug("Trailing data after JSON body", zap.String("path", r.URL.Path))
		writeError(w, http.StatusBadRequest, "Invalid request body: unexpected data after JSON value")
		return false
	}
	return true
}

// parseSize returns the default size for an empty string.
func (h *Handler) parseSize(sizeStr string) (int, error) {
	if sizeStr == "" {
		return h.opts.DefaultSize, nil
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size < h.opts.MinSize || size > h.opts.MaxSize {
		return 0, fmt.Errorf("must be between %d and %d", h.opts.MinSize, h.opts.MaxSize)
	}
	return size, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
