// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/ymiyake/manpokei/handlers"
	"github.com/ymiyake/manpokei/middleware"
	"github.com/ymiyake/manpokei/store"
)

func NewRouter(st *store.Store) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	settingsHandler := handlers.NewSettingsHandler(st)
	stepsHandler := handlers.NewStepsHandler(st)
	historyHandler := handlers.NewHistoryHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes. Registered without a method so each handler can answer
	// unsupported methods with a JSON 405 body.
	mux.HandleFunc("/settings", middleware.WithLogging(settingsHandler.Handle))
	mux.HandleFunc("/steps", middleware.WithLogging(stepsHandler.Handle))
	mux.HandleFunc("/history", middleware.WithLogging(historyHandler.Handle))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("manpokei API v1"))
	})

	return mux
}
