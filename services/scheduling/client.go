package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"availcal/models"

	"go.uber.org/zap"
)

// Client is the HTTP slot fetcher for the upstream scheduling API.
type Client struct {
	BaseURL   string
	APIKey    string
	ServiceID string
	StaffID   string
	HTTP      *http.Client
	Logger    *zap.Logger
}

// NewClient builds a scheduling client with a bounded request timeout.
func NewClient(baseURL, apiKey, serviceID, staffID string, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:   baseURL,
		APIKey:    apiKey,
		ServiceID: serviceID,
		StaffID:   staffID,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		Logger:    logger,
	}
}

// slotsResponse mirrors the upstream payload shape.
type slotsResponse struct {
	Data *struct {
		Slots []models.RawSlot `json:"slots"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchSlots queries the scheduling API for bookable slots in the window.
//
// A missing data.slots field or a non-empty top-level errors list means "no
// availability" for the cycle and returns an empty list with no error.
// Transport failures, non-2xx statuses, and undecodable bodies are returned
// as errors for the caller to degrade on.
func (c *Client) FetchSlots(ctx context.Context, q SlotQuery) ([]models.RawSlot, error) {
	if q.ServiceID == "" {
		q.ServiceID = c.ServiceID
	}
	if q.StaffID == "" {
		q.StaffID = c.StaffID
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("scheduling: encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("scheduling: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scheduling: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("scheduling: unexpected status %d", resp.StatusCode)
	}

	var sr slotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("scheduling: decode response: %w", err)
	}

	if len(sr.Errors) > 0 {
		c.logger().Warn("scheduling API reported errors, treating as no availability",
			zap.String("resource", q.Resource),
			zap.String("firstError", sr.Errors[0].Message),
			zap.Int("errorCount", len(sr.Errors)))
		return nil, nil
	}
	if sr.Data == nil || sr.Data.Slots == nil {
		c.logger().Debug("scheduling API returned no slots field",
			zap.String("resource", q.Resource))
		return nil, nil
	}

	return sr.Data.Slots, nil
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.L()
}
