// Package apiclient is a small HTTP client for the SkillForge API, shared by
// the Discord bot and the skillctl admin CLI.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/osse101/SkillForge_Go/internal/domain"
)

// API paths
const (
	PathBreak        = "/api/v1/mining/break"
	PathPlayer       = "/api/v1/mining/players/"
	PathLeaderboard  = "/api/v1/mining/leaderboard"
	PathCurve        = "/api/v1/mining/curve"
	PathAddLevels    = "/api/v1/admin/mining/add-levels"
	PathSetXP        = "/api/v1/admin/mining/set-xp"
	PathReset        = "/api/v1/admin/mining/reset"
	PathHealthz      = "/healthz"
	HeaderAPIKey     = "X-API-Key"
	DefaultTimeout   = 10 * time.Second
	DefaultRetries   = 3
	DefaultRetryWait = 500 * time.Millisecond
)

// APIError is a non-2xx response from the API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API returned status: %d", e.StatusCode)
	}
	return "API error: " + e.Message
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// APIClient handles communication with the SkillForge API
type APIClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client

	// MaxRetries applies to idempotent requests that fail to connect or get a 5xx
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Client:     &http.Client{Timeout: DefaultTimeout},
		MaxRetries: DefaultRetries,
		RetryDelay: DefaultRetryWait,
	}
}

// doRequest sends a JSON request and decodes a JSON response into out.
// GET and DELETE are retried with exponential backoff; POSTs are sent once
// so an admin change is never applied twice.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	retries := 0
	if method == http.MethodGet || method == http.MethodDelete {
		retries = c.MaxRetries
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			delay := c.RetryDelay * time.Duration(1<<uint(attempt-1))
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set(HeaderAPIKey, c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError && attempt < retries {
			resp.Body.Close()
			lastErr = &APIError{StatusCode: resp.StatusCode}
			slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
			continue
		}

		return decodeResponse(resp, out)
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(data, &errResp)
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

type playerLevelsRequest struct {
	PlayerID string `json:"player_id"`
	Levels   int    `json:"levels,omitempty"`
}

type playerXPRequest struct {
	PlayerID string `json:"player_id"`
	XP       int64  `json:"xp"`
}

// GetMiningStatus returns a player's level and XP breakdown
func (c *APIClient) GetMiningStatus(ctx context.Context, playerID string) (*domain.SkillStatus, error) {
	var status domain.SkillStatus
	if err := c.doRequest(ctx, http.MethodGet, PathPlayer+url.PathEscape(playerID), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// AddMiningLevels moves a player up (or down) by whole levels
func (c *APIClient) AddMiningLevels(ctx context.Context, playerID string, levels int) (*domain.SkillStatus, error) {
	var status domain.SkillStatus
	if err := c.doRequest(ctx, http.MethodPost, PathAddLevels, playerLevelsRequest{PlayerID: playerID, Levels: levels}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// SetMiningXP overwrites a player's total XP
func (c *APIClient) SetMiningXP(ctx context.Context, playerID string, xp int64) (*domain.SkillStatus, error) {
	var status domain.SkillStatus
	if err := c.doRequest(ctx, http.MethodPost, PathSetXP, playerXPRequest{PlayerID: playerID, XP: xp}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ResetMining sets a player's XP back to zero
func (c *APIClient) ResetMining(ctx context.Context, playerID string) (*domain.SkillStatus, error) {
	var status domain.SkillStatus
	if err := c.doRequest(ctx, http.MethodPost, PathReset, playerLevelsRequest{PlayerID: playerID}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ReportBlockBroken sends a block break as the host game would
func (c *APIClient) ReportBlockBroken(ctx context.Context, evt domain.BlockBrokenEvent) (*domain.BreakOutcome, error) {
	var outcome domain.BreakOutcome
	if err := c.doRequest(ctx, http.MethodPost, PathBreak, evt, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// MiningLeaderboard returns the top players by XP
func (c *APIClient) MiningLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	path := PathLeaderboard
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var entries []domain.LeaderboardEntry
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// MiningCurve returns the server's level curve table
func (c *APIClient) MiningCurve(ctx context.Context, levels int) ([]domain.CurveRow, error) {
	path := PathCurve
	if levels > 0 {
		path += "?levels=" + strconv.Itoa(levels)
	}
	var rows []domain.CurveRow
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Healthz reports whether the API answers its liveness check
func (c *APIClient) Healthz(ctx context.Context) error {
	return c.doRequest(ctx, http.MethodGet, PathHealthz, nil, nil)
}
