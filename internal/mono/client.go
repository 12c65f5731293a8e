// Package mono is the Gateway client for the Monobank merchant API. The
// bridge only ever creates invoices; all later knowledge about an invoice
// arrives through the webhook.
package mono

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const tokenHeader = "X-Token"

// ErrGatewayUnavailable covers every failed invoice-create call.
var ErrGatewayUnavailable = errors.New("mono: gateway unavailable")

// APIError carries the upstream status and body for diagnostics.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%v: upstream status %d: %s", ErrGatewayUnavailable, e.StatusCode, e.Body)
}

func (e *APIError) Unwrap() error { return ErrGatewayUnavailable }

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: baseURL,
		token:   token,
	}
}

// CreateInvoice opens a hosted payment page and returns its id and URL.
func (c *Client) CreateInvoice(ctx context.Context, inv CreateInvoiceRequest) (*Invoice, error) {
	body, err := json.Marshal(inv)
	if err != nil {
		return nil, fmt.Errorf("mono: marshal invoice: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/merchant/invoice/create", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mono: build invoice request: %w", err)
	}
	req.Header.Set(tokenHeader, c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstream, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(upstream)}
	}

	var out Invoice
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decoding invoice response: %v", ErrGatewayUnavailable, err)
	}
	return &out, nil
}
