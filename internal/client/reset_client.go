// Package client implements the portal's view of the account API: one
// reset-password call that either reports a business outcome or fails with a
// transport error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/njprem/Fit_city_Reset_Portal/internal/domain"
)

type AccountAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAccountAPIClient builds a client with the given per-request timeout.
// The upstream contract defines no timeout of its own, so the portal owns one.
func NewAccountAPIClient(baseURL string, timeout time.Duration) *AccountAPIClient {
	return &AccountAPIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type confirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ResetPassword submits (token, newPassword) to the account API. A decoded
// body is returned for both accepted and rejected resets; any failure to
// complete the exchange is returned as an error.
func (c *AccountAPIClient) ResetPassword(ctx context.Context, token, newPassword string) (*domain.ResetResult, error) {
	payload, err := json.Marshal(confirmRequest{Token: token, NewPassword: newPassword})
	if err != nil {
		return nil, fmt.Errorf("encode reset request: %w", err)
	}

	url := c.baseURL + "/v1/auth/password-reset/confirm"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build reset request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reset request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read reset response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("reset endpoint answered %d", res.StatusCode)
	}

	var out domain.ResetResult
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode reset response: %w", err)
	}
	return &out, nil
}
