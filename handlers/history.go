// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ymiyake/manpokei/middleware"
	"github.com/ymiyake/manpokei/models"
	"github.com/ymiyake/manpokei/store"
)

// DefaultHistoryDays is the lookback window used when the days parameter
// is absent or unparseable.
const DefaultHistoryDays = 7

type HistoryHandler struct {
	store *store.Store
}

func NewHistoryHandler(st *store.Store) *HistoryHandler {
	return &HistoryHandler{store: st}
}

// Handle dispatches /history by method. Only GET is supported.
func (h *HistoryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	deviceID := r.URL.Query().Get("deviceId")
	if deviceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "deviceId is required")
		return
	}

	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		days = DefaultHistoryDays
	}

	history, err := h.store.History(deviceID, days)
	if err != nil {
		slog.Error("failed to query history", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{History: history})
}
