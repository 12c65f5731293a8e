// Package shopify is the Store client: it reads orders from the Shopify Admin
// API and posts transactions against them. Both calls are authenticated with
// the access token header and bounded by the client timeout.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const accessTokenHeader = "X-Shopify-Access-Token"

type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	apiVersion  string
}

func NewClient(storeDomain, accessToken, apiVersion string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL:     "https://" + storeDomain,
		accessToken: accessToken,
		apiVersion:  apiVersion,
	}
}

// FetchOrder reads one order by id. A 404 maps to ErrOrderNotFound, any other
// non-success response to ErrStoreUnavailable; both carry the upstream body.
func (c *Client) FetchOrder(ctx context.Context, orderID string) (*Order, error) {
	url := fmt.Sprintf("%s/admin/api/%s/orders/%s.json", c.baseURL, c.apiVersion, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("shopify: build order request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apiError(ErrOrderNotFound, resp)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(ErrStoreUnavailable, resp)
	}

	var envelope struct {
		Order Order `json:"order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding order response: %v", ErrStoreUnavailable, err)
	}
	return &envelope.Order, nil
}

// PostTransaction records a transaction against an order. The Admin API offers
// no idempotency key for this call, so a retried post may create a duplicate
// record unless Shopify deduplicates internally.
func (c *Client) PostTransaction(ctx context.Context, orderID string, tx Transaction) error {
	url := fmt.Sprintf("%s/admin/api/%s/orders/%s/transactions.json", c.baseURL, c.apiVersion, orderID)

	body, err := json.Marshal(struct {
		Transaction Transaction `json:"transaction"`
	}{Transaction: tx})
	if err != nil {
		return fmt.Errorf("shopify: marshal transaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("shopify: build transaction request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransactionRejected, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(ErrTransactionRejected, resp)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set(accessTokenHeader, c.accessToken)
	req.Header.Set("Content-Type", "application/json")
}

func apiError(kind error, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	return &APIError{Kind: kind, StatusCode: resp.StatusCode, Body: string(body)}
}
