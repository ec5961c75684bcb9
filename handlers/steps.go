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

type StepsHandler struct {
	store *store.Store
}

func NewStepsHandler(st *store.Store) *StepsHandler {
	return &StepsHandler{store: st}
}

// Handle dispatches /steps by method.
func (h *StepsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPost:
		h.save(w, r)
	default:
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// get handles GET /steps?deviceId=&date=
// Returns {steps, goal} for the day, or {0, 8000} when nothing has been
// written yet.
func (h *StepsHandler) get(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("deviceId")
	date := r.URL.Query().Get("date")
	if deviceID == "" || date == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "deviceId and date are required")
		return
	}

	rec, err := h.store.GetDailySteps(deviceID, date)
	if err != nil {
		slog.Error("failed to get daily steps", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rec)
}

// save handles POST /steps
// Upserts one (device, date) record, replacing steps and goal in full.
func (h *StepsHandler) save(w http.ResponseWriter, r *http.Request) {
	var req models.SaveStepsRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.DeviceID == "" || req.Date == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "deviceId and date are required")
		return
	}

	rec := models.DailySteps{
		Steps: req.Steps,
		Goal:  orDefault(req.Goal, models.DefaultGoal),
	}

	if err := h.store.UpsertDailySteps(req.DeviceID, req.Date, rec); err != nil {
		slog.Error("failed to upsert daily steps", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OKResponse{OK: true})
}
