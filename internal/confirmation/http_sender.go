package confirmation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
	"github.com/Mantelijo/sui-wallet-listener/internal/report"
	"github.com/Mantelijo/sui-wallet-listener/internal/transport"
)

const (
	sinkHTTP = "http"

	// maxLoggedBody caps the backend response body kept for logs.
	maxLoggedBody = 1024

	defaultHTTPSenderTimeout = 10 * time.Second
)

func NewHTTPSender(backendUrl, statusPath string, opts ...HTTPSenderOption) *HTTPSender {
	s := &HTTPSender{
		url:    backendUrl + statusPath,
		client: transport.NewClient(transport.WithTimeout(defaultHTTPSenderTimeout)),
	}

	for _, opt := range opts {
		opt.Apply(s)
	}

	return s
}

var _ Sender = (*HTTPSender)(nil)

// HTTPSender posts reports as JSON to the confirmation backend. Each report is
// sent exactly once.
type HTTPSender struct {
	url     string
	client  *retryablehttp.Client
	metrics *metrics.Metrics
}

func (s *HTTPSender) Send(ctx context.Context, r *report.TransactionReport) {
	err := s.send(ctx, r)
	s.metrics.RecordDelivery(sinkHTTP, err)
	if err != nil {
		slog.Error("failed to deliver transaction report to backend",
			slog.String("digest", r.Digest),
			slog.String("url", s.url),
			slog.Any("error", err),
		)
	}
}

func (s *HTTPSender) send(ctx context.Context, r *report.TransactionReport) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: status %d: %s", ErrDeliveryFailed, resp.StatusCode, string(body))
	}

	slog.Info("delivered transaction report to backend",
		slog.String("digest", r.Digest),
		slog.Int("status", resp.StatusCode),
		slog.String("response", string(body)),
	)
	return nil
}

type HTTPSenderOption interface {
	Apply(*HTTPSender)
}

type WithHTTPClient struct {
	Client *retryablehttp.Client
}

func (w WithHTTPClient) Apply(s *HTTPSender) {
	s.client = w.Client
}

type WithHTTPMetrics struct {
	Metrics *metrics.Metrics
}

func (w WithHTTPMetrics) Apply(s *HTTPSender) {
	s.metrics = w.Metrics
}
