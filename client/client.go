// Copyright (c) 2025 Yusuke Miyake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ymiyake/manpokei/models"
)

// Client is the best-effort HTTP client for the step-tracking API.
// Every call converts failure - transport error, error payload, bad
// status - into a nil result; callers treat nil as "no update
// available" and proceed with local state. Nothing here retries.
type Client struct {
	baseURL  string
	deviceID string
	http     *http.Client
}

// New creates a client for the API at baseURL. No explicit timeout is
// imposed; a slow request is simply abandoned by its caller when the
// next periodic trigger supersedes it.
func New(baseURL, deviceID string) *Client {
	return &Client{
		baseURL:  baseURL,
		deviceID: deviceID,
		http:     &http.Client{},
	}
}

func (c *Client) DeviceID() string {
	return c.deviceID
}

// get performs a GET with the device id in the query string and decodes
// the body into v. Returns false on any failure.
func (c *Client) get(ctx context.Context, path string, params url.Values, v interface{}) bool {
	if params == nil {
		params = url.Values{}
	}
	params.Set("deviceId", c.deviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		slog.Warn("API GET failed", "path", path, "error", err)
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("API GET failed", "path", path, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("API GET failed", "path", path, "status", resp.StatusCode)
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		slog.Warn("API GET failed", "path", path, "error", err)
		return false
	}
	return true
}

// post performs a POST with the device id injected into the JSON body.
// Returns false on any failure.
func (c *Client) post(ctx context.Context, path string, body map[string]interface{}) bool {
	body["deviceId"] = c.deviceID

	payload, err := json.Marshal(body)
	if err != nil {
		slog.Warn("API POST failed", "path", path, "error", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		slog.Warn("API POST failed", "path", path, "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Warn("API POST failed", "path", path, "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("API POST failed", "path", path, "status", resp.StatusCode)
		return false
	}
	return true
}

// GetSettings fetches the device profile. Nil means no update available.
func (c *Client) GetSettings(ctx context.Context) *models.Settings {
	var s models.Settings
	if !c.get(ctx, "/settings", nil, &s) {
		return nil
	}
	return &s
}

// PostSettings pushes the full profile. Reports success only for the
// caller's log line; failures are already absorbed.
func (c *Client) PostSettings(ctx context.Context, s models.Settings) bool {
	return c.post(ctx, "/settings", map[string]interface{}{
		"goal":        s.Goal,
		"stride":      s.Stride,
		"weight":      s.Weight,
		"sensitivity": s.Sensitivity,
	})
}

// GetSteps fetches one day's record. Nil means no update available.
func (c *Client) GetSteps(ctx context.Context, date string) *models.DailySteps {
	params := url.Values{}
	params.Set("date", date)

	var rec models.DailySteps
	if !c.get(ctx, "/steps", params, &rec) {
		return nil
	}
	return &rec
}

// PostSteps upserts one day's (steps, goal) pair.
func (c *Client) PostSteps(ctx context.Context, date string, steps, goal int) bool {
	return c.post(ctx, "/steps", map[string]interface{}{
		"date":  date,
		"steps": steps,
		"goal":  goal,
	})
}

// GetHistory fetches the lookback records, descending by date. Nil
// means no update available; callers render local data only.
func (c *Client) GetHistory(ctx context.Context, days int) []models.DailyStepRecord {
	params := url.Values{}
	params.Set("days", strconv.Itoa(days))

	var resp models.HistoryResponse
	if !c.get(ctx, "/history", params, &resp) {
		return nil
	}
	return resp.History
}
