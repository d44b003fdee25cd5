// Package foodapi is the HTTP client the ordering frontend uses to
// talk to the FoodExpress API.
package foodapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodexpress/foodexpress-backend/internal/client/checkout"
	pkgerrors "github.com/foodexpress/foodexpress-backend/pkg/errors"
)

const (
	defaultBaseURL             = "http://localhost:3000"
	responseBodyReadLimit int64 = 1024
)

// Client calls the menu, order and delivery-time endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds an API client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
		client.baseURL = strings.TrimRight(trimmed, "/")
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client
}

// MenuItem is one dish as served by GET /menu.
type MenuItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
}

// Menu fetches the full menu.
func (c *Client) Menu(ctx context.Context) ([]MenuItem, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "food api client not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/menu", nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build menu request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute menu request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, dependencyStatusError(resp, "menu request failed")
	}

	var apiResp struct {
		Items []MenuItem `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode menu response")
	}
	return apiResp.Items, nil
}

// EstimateDelivery asks the API for delivery minutes to a location. It
// satisfies the checkout flow's Estimator interface.
func (c *Client) EstimateDelivery(ctx context.Context, location string) (int, error) {
	if c == nil {
		return 0, pkgerrors.New(pkgerrors.CodeDependency, "food api client not configured")
	}
	if strings.TrimSpace(location) == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "location is required")
	}

	endpoint := c.baseURL + "/delivery-time?location=" + url.QueryEscape(location)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build delivery-time request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute delivery-time request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, dependencyStatusError(resp, "delivery-time request failed")
	}

	var apiResp struct {
		EtaMinutes int `json:"etaMinutes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode delivery-time response")
	}
	return apiResp.EtaMinutes, nil
}

// PlaceOrder submits an order. It satisfies the checkout flow's
// RemoteOrders interface.
func (c *Client) PlaceOrder(ctx context.Context, submission checkout.OrderSubmission) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "food api client not configured")
	}

	payload, err := json.Marshal(struct {
		FoodName     string `json:"foodName"`
		UserLocation struct {
			City string `json:"city,omitempty"`
		} `json:"userLocation"`
		TotalAmount decimal.Decimal `json:"totalAmount"`
	}{
		FoodName: submission.FoodName,
		UserLocation: struct {
			City string `json:"city,omitempty"`
		}{City: submission.City},
		TotalAmount: submission.TotalAmount,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal order request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/order", bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build order request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute order request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return dependencyStatusError(resp, "order request failed")
	}
	return nil
}

func dependencyStatusError(resp *http.Response, message string) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	return pkgerrors.Wrap(pkgerrors.CodeDependency,
		fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), message)
}
