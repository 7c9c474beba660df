// Package rest implements the remote TreinoPago API port over HTTP.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/ports"
)

const maxResponseBytes = 1 << 20

// Client wraps HTTP calls to the TreinoPago REST API. All outbound
// traffic goes through an optional circuit breaker; an open breaker
// surfaces as a transport failure, same as a refused connection.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

var _ ports.API = (*Client)(nil)

func NewClient(httpClient *http.Client, baseURL string, cb *gobreaker.CircuitBreaker, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		cb:         cb,
		logger:     logger,
	}
}

// do executes one request and decodes the response into out when out is
// non-nil and the server sent a body. Error contract per ports.API.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + "/" + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.execute(req)
	if err != nil {
		c.logger.Error("api: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &ports.TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Error("api: failed to read response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &ports.TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("api: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(raw)),
		)
		return &ports.StatusError{
			Code:   resp.StatusCode,
			Status: http.StatusText(resp.StatusCode),
			Body:   strings.TrimSpace(string(raw)),
		}
	}

	c.logger.Debug("api: request OK",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) execute(req *http.Request) (*http.Response, error) {
	if c.cb == nil {
		return c.httpClient.Do(req)
	}

	result, err := c.cb.Execute(func() (any, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return nil, err
	}
	return result.(*http.Response), nil
}

func (c *Client) ListClients(ctx context.Context) ([]domain.Client, error) {
	var payload []clientPayload
	if err := c.do(ctx, http.MethodGet, "client", nil, &payload); err != nil {
		return nil, err
	}
	return clientsFromPayload(payload), nil
}

func (c *Client) GetClient(ctx context.Context, id domain.ClientID) (domain.Client, error) {
	var payload clientPayload
	if err := c.do(ctx, http.MethodGet, "client/"+string(id), nil, &payload); err != nil {
		return domain.Client{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) CreateClient(ctx context.Context, req ports.CreateClientRequest) (domain.Client, error) {
	var payload clientPayload
	if err := c.do(ctx, http.MethodPost, "client", createClientPayloadFrom(req), &payload); err != nil {
		return domain.Client{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) UpdateClient(ctx context.Context, id domain.ClientID, req ports.UpdateClientRequest) (domain.Client, error) {
	var payload clientPayload
	if err := c.do(ctx, http.MethodPatch, "client/"+string(id), updateClientPayloadFrom(req), &payload); err != nil {
		return domain.Client{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) DeleteClient(ctx context.Context, id domain.ClientID) error {
	return c.do(ctx, http.MethodDelete, "client/"+string(id), nil, nil)
}

func (c *Client) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	var payload []planPayload
	if err := c.do(ctx, http.MethodGet, "plan", nil, &payload); err != nil {
		return nil, err
	}
	return plansFromPayload(payload), nil
}

func (c *Client) GetPlan(ctx context.Context, id domain.PlanID) (domain.Plan, error) {
	var payload planPayload
	if err := c.do(ctx, http.MethodGet, "plan/"+string(id), nil, &payload); err != nil {
		return domain.Plan{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) CreatePlan(ctx context.Context, req ports.CreatePlanRequest) (domain.Plan, error) {
	var payload planPayload
	if err := c.do(ctx, http.MethodPost, "plan", createPlanPayloadFrom(req), &payload); err != nil {
		return domain.Plan{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) UpdatePlan(ctx context.Context, id domain.PlanID, req ports.UpdatePlanRequest) (domain.Plan, error) {
	var payload planPayload
	if err := c.do(ctx, http.MethodPatch, "plan/"+string(id), updatePlanPayloadFrom(req), &payload); err != nil {
		return domain.Plan{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) DeletePlan(ctx context.Context, id domain.PlanID) error {
	return c.do(ctx, http.MethodDelete, "plan/"+string(id), nil, nil)
}

func (c *Client) ListBillings(ctx context.Context) ([]domain.Billing, error) {
	var payload []billingPayload
	if err := c.do(ctx, http.MethodGet, "charge", nil, &payload); err != nil {
		return nil, err
	}
	return billingsFromPayload(payload), nil
}

func (c *Client) GetBilling(ctx context.Context, id domain.BillingID) (domain.Billing, error) {
	var payload billingPayload
	if err := c.do(ctx, http.MethodGet, "charge/"+string(id), nil, &payload); err != nil {
		return domain.Billing{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) GetPixKey(ctx context.Context) (string, error) {
	var payload pixKeyPayload
	if err := c.do(ctx, http.MethodGet, "system-config", nil, &payload); err != nil {
		return "", err
	}
	return payload.PixKey, nil
}

func (c *Client) SetPixKey(ctx context.Context, key string) error {
	return c.do(ctx, http.MethodPost, "system-config", pixKeyPayload{PixKey: key}, nil)
}
