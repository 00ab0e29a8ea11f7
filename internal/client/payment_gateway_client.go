// Package client holds outbound clients for collaborating services.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sendbyop/booking-service/internal/domain"
)

// PaymentGatewayClient sends disbursement orders to the payment provider
// over its JSON API. The idempotency key makes retried requests safe: the
// provider replays the original transaction instead of paying twice.
type PaymentGatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPaymentGatewayClient(baseURL string) *PaymentGatewayClient {
	return &PaymentGatewayClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type disbursementResponse struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
}

func (c *PaymentGatewayClient) Disburse(ctx context.Context, req domain.DisbursementRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/disbursements", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("disbursement request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("payment gateway returned %s", resp.Status)
	}

	var out disbursementResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding gateway response: %w", err)
	}
	if out.TransactionID == "" {
		return "", fmt.Errorf("payment gateway accepted the request without a transaction id: %s", out.Message)
	}

	return out.TransactionID, nil
}
