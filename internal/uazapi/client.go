// Package uazapi is a thin client for the UAZAPI WhatsApp gateway.
// Only the two endpoints the platform uses are covered: bootstrapping an
// instance (which yields a pairing QR code) and polling its status.
package uazapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/paclead/platform-backend/internal/metrics"
)

const (
	connectTimeout = 30 * time.Second
	statusTimeout  = 15 * time.Second
)

// UpstreamError is a non-200 reply from UAZAPI. The raw body is kept so the
// boundary can surface it in the error detail.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("uazapi returned %d: %s", e.StatusCode, e.Body)
}

// ConnectResult is the subset of the connect reply the platform consumes.
// UAZAPI deployments have shipped the QR code under three different keys,
// so all of them are decoded.
type ConnectResult struct {
	QRCode    string `json:"qrCode"`
	QRCodeAlt string `json:"qrcode"`
	QRCodeOld string `json:"qr"`
}

// QR returns the pairing code under whichever key the server used.
func (r *ConnectResult) QR() string {
	switch {
	case r.QRCode != "":
		return r.QRCode
	case r.QRCodeAlt != "":
		return r.QRCodeAlt
	default:
		return r.QRCodeOld
	}
}

// Client is the outbound collaborator contract, narrowed so usecases can be
// tested with a fake.
type Client interface {
	Connect(ctx context.Context, baseURL, token, instance string) (*ConnectResult, error)
	Status(ctx context.Context, baseURL, token string) (json.RawMessage, error)
}

// HTTPClient talks to a real UAZAPI deployment.
type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{}, // no global timeout, each call sets its own
	}
}

// Connect asks UAZAPI to bring up an instance and returns the pairing QR.
func (c *HTTPClient) Connect(ctx context.Context, baseURL, token, instance string) (*ConnectResult, error) {
	payload, err := json.Marshal(map[string]string{"instance": instance})
	if err != nil {
		return nil, fmt.Errorf("marshal connect payload: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, baseURL+"/instance/connect", token, payload, connectTimeout, "connect")
	if err != nil {
		return nil, err
	}

	var result ConnectResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode connect response: %w", err)
	}
	return &result, nil
}

// Status fetches the instance status and returns the upstream JSON verbatim.
func (c *HTTPClient) Status(ctx context.Context, baseURL, token string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, baseURL+"/instance/status", token, nil, statusTimeout, "status")
}

func (c *HTTPClient) do(ctx context.Context, method, url, token string, payload []byte, timeout time.Duration, endpoint string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("token", token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UazapiRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("uazapi %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UazapiRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("read uazapi response: %w", err)
	}

	metrics.UazapiRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	metrics.UazapiRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
