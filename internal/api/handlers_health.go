// Animerec - Content-Based Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/models"
)

// Health handles GET /health. The body is the flat legacy shape
// {status, anime_count, model_ready}; status stays "healthy" while the
// process is up and model_ready tells whether recommendations work.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	health := models.HealthStatus{Status: "healthy"}
	if m := h.index.Model(); m != nil {
		health.AnimeCount = m.Len()
		health.ModelReady = true
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, health)
}

// HealthLive handles liveness checks. It returns 200 while the process is
// alive, regardless of the model.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// HealthReady handles readiness checks. It returns 503 until a model is
// being served.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	m, gen, loadedAt := h.index.Snapshot()
	status := models.ReadinessStatus{
		Generation: gen,
		Uptime:     time.Since(h.startTime).Seconds(),
	}
	if m != nil {
		status.Ready = true
		status.AnimeCount = m.Len()
		loaded := loadedAt.UTC()
		status.LoadedAt = &loaded
	}

	statusCode := http.StatusOK
	apiStatus := "success"
	var apiErr *models.APIError
	if !status.Ready {
		statusCode = http.StatusServiceUnavailable
		apiStatus = "error"
		apiErr = &models.APIError{Code: ErrCodeModelNotReady, Message: "Recommendation model is not ready"}
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status:   apiStatus,
		Data:     status,
		Metadata: newMetadata(),
		Error:    apiErr,
	})
}
