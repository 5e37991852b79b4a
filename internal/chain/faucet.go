package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/Mantelijo/sui-wallet-listener/internal/transport"
)

var (
	// ErrFaucetUnavailable is returned when the configured network has no
	// faucet, e.g. mainnet.
	ErrFaucetUnavailable = errors.New("faucet is not available on this network")

	ErrFaucetRequestFailed = errors.New("faucet request failed")
)

// Faucet requests test SUI for an address.
type Faucet interface {
	RequestSui(ctx context.Context, address string) (string, error)
}

func NewFaucet(faucetUrl string, opts ...FaucetOption) *faucet {
	f := &faucet{
		faucetUrl: faucetUrl,
		attempts:  3,
		delay:     time.Second,
		client:    transport.NewClient(transport.WithTimeout(30 * time.Second)),
	}

	for _, opt := range opts {
		opt.Apply(f)
	}

	return f
}

var _ Faucet = (*faucet)(nil)

type faucet struct {
	faucetUrl string
	client    *retryablehttp.Client

	attempts uint
	delay    time.Duration
}

type faucetRequest struct {
	FixedAmountRequest struct {
		Recipient string `json:"recipient"`
	} `json:"FixedAmountRequest"`
}

type faucetResponse struct {
	Status    json.RawMessage `json:"status"`
	CoinsSent []struct {
		Amount           uint64 `json:"amount"`
		ID               string `json:"id"`
		TransferTxDigest string `json:"transferTxDigest"`
	} `json:"coins_sent"`
}

// RequestSui asks the faucet to send a fixed amount of SUI to address and
// returns the transfer digest.
func (f *faucet) RequestSui(ctx context.Context, address string) (string, error) {
	if f.faucetUrl == "" {
		return "", ErrFaucetUnavailable
	}

	address, err := NormalizeAddress(address)
	if err != nil {
		return "", err
	}

	slog.Info("requesting sui from faucet", slog.String("address", address))

	var digest string
	err = retry.Do(
		func() error {
			d, err := f.request(ctx, address)
			if err != nil {
				return err
			}
			digest = d
			return nil
		},
		retry.Attempts(f.attempts),
		retry.Delay(f.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			slog.Warn("faucet request failed, retrying",
				slog.Uint64("attempt", uint64(n+1)),
				slog.Any("error", err),
			)
		}),
	)
	if err != nil {
		return "", err
	}

	slog.Info("received sui from faucet",
		slog.String("address", address),
		slog.String("digest", digest),
	)
	return digest, nil
}

func (f *faucet) request(ctx context.Context, address string) (string, error) {
	body := faucetRequest{}
	body.FixedAmountRequest.Recipient = address
	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, f.faucetUrl, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFaucetRequestFailed, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFaucetRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d: %s", ErrFaucetRequestFailed, resp.StatusCode, string(respBytes))
	}

	res := &faucetResponse{}
	if err := json.Unmarshal(respBytes, res); err != nil {
		return "", fmt.Errorf("%w: failed to parse response: %w", ErrFaucetRequestFailed, err)
	}

	var status string
	if err := json.Unmarshal(res.Status, &status); err != nil || status != "Success" {
		return "", retry.Unrecoverable(
			fmt.Errorf("%w: %s", ErrFaucetRequestFailed, string(res.Status)),
		)
	}
	if len(res.CoinsSent) == 0 {
		return "", retry.Unrecoverable(
			fmt.Errorf("%w: no coins sent", ErrFaucetRequestFailed),
		)
	}

	return res.CoinsSent[0].TransferTxDigest, nil
}

type FaucetOption interface {
	Apply(*faucet)
}

// WithFaucetRetry overrides the number of attempts and the base delay.
type WithFaucetRetry struct {
	Attempts uint
	Delay    time.Duration
}

func (w WithFaucetRetry) Apply(f *faucet) {
	f.attempts = w.Attempts
	f.delay = w.Delay
}
