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
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/preview"
	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/qr"
	"github.com/wso2-open-operations/common-tools/operations/print-safety/internal/simulation"
)

// stateRequest carries optional control values. Missing fields keep their
// current (or default) value.
type stateRequest struct {
	Blur     *float64 `json:"blur"`
	Contrast *float64 `json:"contrast"`
	Noise    *float64 `json:"noise"`
}

// applyTo runs the clamping setters for every present field and logs values
// that were clamped.
func (req stateRequest) applyTo(s *simulation.State, logger *zap.Logger) {
	set := func(name string, v *float64, setter func(float64) float64) {
		if v == nil {
			return
		}
		if stored := setter(*v); stored != *v {
			logger.Debug("Control value clamped",
				zap.String("control", name),
				zap.Float64("requested", *v),
				zap.Float64("stored", stored),
			)
		}
	}
	set("blur", req.Blur, s.SetBlur)
	set("contrast", req.Contrast, s.SetContrast)
	set("noise", req.Noise, s.SetNoise)
}

type confidenceRequest struct {
	stateRequest
	Before bool `json:"before"`
}

type confidenceResponse struct {
	State      simulation.State            `json:"state"`
	Confidence simulation.ConfidenceResult `json:"confidence"`
	Filter     simulation.FilterDescriptor `json:"filter"`
	CSS        preview.CSS                 `json:"css"`
}

type createSessionRequest struct {
	Markup  string `json:"markup"`
	Content string `json:"content"`
	Size    int    `json:"size"`
}

type presetRequest struct {
	Name string `json:"name"`
}

// ListPresets handles GET /presets.
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"presets": simulation.Presets()})
}

// Confidence handles POST /confidence. It scores a state without creating a session.
func (h *Handler) Confidence(w http.ResponseWriter, r *http.Request) {
	var req confidenceRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	state := simulation.NewState()
	req.applyTo(&state, h.logger)

	filter := simulation.ComposeFilter(state, req.Before)
	writeJSON(w, http.StatusOK, confidenceResponse{
		State:      state,
		Confidence: simulation.ComputeConfidence(state),
		Filter:     filter,
		CSS:        preview.NewCSS(filter),
	})
}

// CreateSession handles POST /sessions. The markup is stored as given; when
// only content is supplied a QR code SVG is generated for it.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	markup := req.Markup
	if markup == "" && req.Content != "" {
		size := req.Size
		if size == 0 {
			size = h.opts.DefaultSize
		}
		svg, err := h.svc.GenerateSVG([]byte(req.Content), size)
		if err != nil {
			h.writeDomainError(w, r, err)
			return
		}
		markup = svg
	}

	sess, err := h.store.Create(markup)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.logger.Info("Preview session created", zap.String("session_id", sess.ID))
	writeJSON(w, http.StatusCreated, preview.Render(sess))
}

// GetSession handles GET /sessions/{id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Get(mux.Vars(r)["id"])
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview.Render(sess))
}

// UpdateSession handles PATCH /sessions/{id} with any of blur, contrast and noise.
func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req stateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.store.Update(mux.Vars(r)["id"], func(s *preview.Session) error {
		req.applyTo(&s.State, h.logger)
		return nil
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview.Render(sess))
}

// ApplyPreset handles POST /sessions/{id}/preset.
func (h *Handler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.store.Update(mux.Vars(r)["id"], func(s *preview.Session) error {
		_, err := s.State.ApplyPreset(req.Name)
		return err
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.logger.Debug("Preset applied",
		zap.String("session_id", sess.ID),
		zap.String("preset", req.Name),
	)
	writeJSON(w, http.StatusOK, preview.Render(sess))
}

// ToggleBefore handles POST /sessions/{id}/toggle, switching between the
// original and the simulated view.
func (h *Handler) ToggleBefore(w http.ResponseWriter, r *http.Request) {
	sess, err := h.store.Update(mux.Vars(r)["id"], func(s *preview.Session) error {
		s.Before = !s.Before
		return nil
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, preview.Render(sess))
}

// DeleteSession handles DELETE /sessions/{id}.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.Delete(id); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.logger.Info("Preview session ended", zap.String("session_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// writeDomainError maps service errors onto status codes.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, preview.ErrSessionNotFound), errors.Is(err, simulation.ErrUnknownPreset):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, preview.ErrStoreFull):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, qr.ErrEmptyData), errors.Is(err, qr.ErrInvalidSize), errors.Is(err, qr.ErrDataTooLong):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("Request failed",
			zap.Error(err),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
