package confirmation

import (
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mantelijo/sui-wallet-listener/internal/report"
)

func testReport() *report.TransactionReport {
	return &report.TransactionReport{
		Digest:           "3Ltg8gYBM7b2QzwYGZzGZxS4VeFPV1YQ3PqNfF4Fhcmq",
		Status:           report.StatusSuccess,
		Type:             report.TypeDeposit,
		SenderAddress:    "0xb0b",
		RecipientAddress: "0xa11ce",
		SuiAmountChange:  big.NewInt(1500),
		TimestampMs:      "1718000000000",
	}
}

func TestHTTPSender(t *testing.T) {
	t.Run("posts the report as json", func(t *testing.T) {
		type captured struct {
			method      string
			path        string
			contentType string
			requestID   string
			body        []byte
		}
		got := make(chan captured, 1)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			got <- captured{
				method:      r.Method,
				path:        r.URL.Path,
				contentType: r.Header.Get("Content-Type"),
				requestID:   r.Header.Get("X-Request-Id"),
				body:        body,
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("OK"))
		}))
		defer server.Close()

		s := NewHTTPSender(server.URL, "/transaction-status")
		s.Send(context.Background(), testReport())

		c := <-got
		assert.Equal(t, http.MethodPost, c.method)
		assert.Equal(t, "/transaction-status", c.path)
		assert.Equal(t, "application/json", c.contentType)
		assert.NotEmpty(t, c.requestID)

		payload := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(c.body, &payload))
		assert.Equal(t, "3Ltg8gYBM7b2QzwYGZzGZxS4VeFPV1YQ3PqNfF4Fhcmq", payload["suiTransactionDigest"])
		assert.Equal(t, "SUCCESS", payload["status"])
		assert.Equal(t, "deposit", payload["type"])
		assert.Equal(t, float64(1500), payload["suiAmountChange"])
		assert.NotContains(t, payload, "errorMessage")
	})

	t.Run("backend error is swallowed after a single attempt", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("down for maintenance"))
		}))
		defer server.Close()

		s := NewHTTPSender(server.URL, "/transaction-status")
		assert.NotPanics(t, func() {
			s.Send(context.Background(), testReport())
		})
		assert.Equal(t, int32(1), calls.Load())

		err := s.send(context.Background(), testReport())
		assert.ErrorIs(t, err, ErrDeliveryFailed)
		assert.Contains(t, err.Error(), "status 503")
		assert.Contains(t, err.Error(), "down for maintenance")
	})

	t.Run("unreachable backend is swallowed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		s := NewHTTPSender(url, "/transaction-status")
		assert.NotPanics(t, func() {
			s.Send(context.Background(), testReport())
		})
		assert.ErrorIs(t, s.send(context.Background(), testReport()), ErrDeliveryFailed)
	})
}
