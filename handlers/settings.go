// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ymiyake/manpokei/middleware"
	"github.com/ymiyake/manpokei/models"
	"github.com/ymiyake/manpokei/store"
)

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// Handle dispatches /settings by method. OPTIONS preflight never reaches
// here - the CORS middleware answers it.
func (h *SettingsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPost:
		h.save(w, r)
	default:
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// get handles GET /settings?deviceId=
// Returns the stored profile, or the defaults for an unknown device.
func (h *SettingsHandler) get(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("deviceId")
	if deviceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "deviceId is required")
		return
	}

	settings, err := h.store.GetSettings(deviceID)
	if err != nil {
		slog.Error("failed to get settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, settings)
}

// save handles POST /settings
// Upserts the full profile. Zero or absent numeric fields fall back to
// the defaults, matching the get-side behavior for unknown devices.
func (h *SettingsHandler) save(w http.ResponseWriter, r *http.Request) {
	var req models.SaveSettingsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.DeviceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "deviceId is required")
		return
	}

	settings := models.Settings{
		Goal:        orDefault(req.Goal, models.DefaultGoal),
		Stride:      orDefault(req.Stride, models.DefaultStride),
		Weight:      orDefault(req.Weight, models.DefaultWeight),
		Sensitivity: orDefault(req.Sensitivity, models.DefaultSensitivity),
	}

	if err := h.store.UpsertSettings(req.DeviceID, settings); err != nil {
		slog.Error("failed to upsert settings", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
