// Package bank implements the client for the acquiring bank's
// payments endpoint.
package bank

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"paygate/internal/errors"
	"paygate/internal/models"
)

const paymentsPath = "/payments"

// Authorization is the bank's verdict on a payment. The authorization
// code is opaque to the gateway and is not persisted.
type Authorization struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code"`
}

// Client submits payment requests to the acquiring bank.
//
// Implementations make exactly one attempt per call. Resilience
// policies (retries with backoff, circuit breaking) belong in a
// wrapping Client, not here, so the processor stays unaware of them.
type Client interface {
	Authorize(ctx context.Context, req *models.PaymentRequest) (*Authorization, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient returns a Client talking to the bank at baseURL. The
// timeout bounds the whole call including body read; the per-request
// context can cancel it earlier.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Authorize forwards the request to POST {baseURL}/payments and maps
// the outcome:
//
//	400         -> "Invalid payment request"
//	503         -> "Acquiring Bank unavailable"
//	anything else that is not a parseable 200 -> "Bank request failed"
func (c *httpClient) Authorize(ctx context.Context, req *models.PaymentRequest) (*Authorization, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.NewBankError(errors.BankRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentsPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewBankError(errors.BankRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		log.Printf("acquiring bank request error: %v", err)
		return nil, errors.NewBankError(errors.BankRequestFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusBadRequest:
		return nil, errors.NewBankError(errors.BankInvalidRequest, statusError(resp.StatusCode))
	case http.StatusServiceUnavailable:
		return nil, errors.NewBankError(errors.BankUnavailable, statusError(resp.StatusCode))
	default:
		return nil, errors.NewBankError(errors.BankRequestFailed, statusError(resp.StatusCode))
	}

	var auth Authorization
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&auth); err != nil {
		return nil, errors.NewBankError(errors.BankRequestFailed, err)
	}
	return &auth, nil
}

func statusError(code int) error {
	return fmt.Errorf("acquiring bank responded with status %d", code)
}
