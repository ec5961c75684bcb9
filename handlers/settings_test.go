// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ymiyake/manpokei/db"
	"github.com/ymiyake/manpokei/models"
	"github.com/ymiyake/manpokei/store"
	"github.com/ymiyake/manpokei/testutil"
)

func TestGetSettings(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn, db.DialectSQLite)
	handler := NewSettingsHandler(st)

	testutil.SeedSettings(t, conn, "known-device", 12000, 75, 68, 18)

	tests := []struct {
		name         string
		path         string
		expectStatus int
		expect       *models.Settings
	}{
		{
			name:         "known device returns stored profile",
			path:         "/settings?deviceId=known-device",
			expectStatus: http.StatusOK,
			expect:       &models.Settings{Goal: 12000, Stride: 75, Weight: 68, Sensitivity: 18},
		},
		{
			name:         "unknown device returns defaults",
			path:         "/settings?deviceId=never-seen",
			expectStatus: http.StatusOK,
			expect:       &models.Settings{Goal: 8000, Stride: 70, Weight: 60, Sensitivity: 12},
		},
		{
			name:         "missing deviceId",
			path:         "/settings",
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(http.MethodGet, tt.path, nil, nil)
			w := httptest.NewRecorder()

			handler.Handle(w, req)

			testutil.AssertStatus(t, w, tt.expectStatus)
			if tt.expect != nil {
				var got models.Settings
				testutil.AssertJSON(t, w, &got)
				if got != *tt.expect {
					t.Errorf("expected %+v, got %+v", *tt.expect, got)
				}
			}
		})
	}
}

func TestSaveSettings(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn, db.DialectSQLite)
	handler := NewSettingsHandler(st)

	tests := []struct {
		name         string
		body         interface{}
		expectStatus int
	}{
		{
			name: "valid save",
			body: models.SaveSettingsRequest{
				DeviceID: "dev-1", Goal: 10000, Stride: 80, Weight: 70, Sensitivity: 15,
			},
			expectStatus: http.StatusOK,
		},
		{
			name:         "missing deviceId",
			body:         models.SaveSettingsRequest{Goal: 10000},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "invalid JSON",
			body:         "not json",
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(http.MethodPost, "/settings", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Handle(w, req)

			testutil.AssertStatus(t, w, tt.expectStatus)
		})
	}

	// The valid save above must be readable back
	got, err := st.GetSettings("dev-1")
	if err != nil {
		t.Fatal(err)
	}
	want := models.Settings{Goal: 10000, Stride: 80, Weight: 70, Sensitivity: 15}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestSaveSettings_ZeroFieldsFallBackToDefaults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	st := store.New(conn, db.DialectSQLite)
	handler := NewSettingsHandler(st)

	req := testutil.MakeRequest(http.MethodPost, "/settings",
		models.SaveSettingsRequest{DeviceID: "dev-1", Goal: 9000}, nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	got, err := st.GetSettings("dev-1")
	if err != nil {
		t.Fatal(err)
	}
	want := models.Settings{Goal: 9000, Stride: 70, Weight: 60, Sensitivity: 12}
	if got != want {
		t.Errorf("expected defaults for absent fields %+v, got %+v", want, got)
	}
}

func TestSettings_MethodNotAllowed(t *testing.T) {
	handler := NewSettingsHandler(testutil.NewTestStore(t))

	req := testutil.MakeRequest(http.MethodDelete, "/settings?deviceId=dev-1", nil, nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	testutil.AssertStatus(t, w, http.StatusMethodNotAllowed)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if errResp.Error == "" {
		t.Error("expected JSON error body for 405")
	}
}
