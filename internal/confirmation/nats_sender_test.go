package confirmation

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mantelijo/sui-wallet-listener/internal/report"
)

type published struct {
	subject string
	data    []byte
}

type fakeJetStream struct {
	mu       sync.Mutex
	messages []published
	err      error
}

func (f *fakeJetStream) Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.messages = append(f.messages, published{subject: subject, data: data})
	return &jetstream.PubAck{Stream: ReportStreamName, Sequence: uint64(len(f.messages))}, nil
}

func TestNatsSender(t *testing.T) {
	t.Run("publishes to the wallet subject", func(t *testing.T) {
		js := &fakeJetStream{}
		s := &NatsSender{js: js, subject: reportSubjectPrefix + "0xa11ce"}

		s.Send(context.Background(), testReport())

		require.Len(t, js.messages, 1)
		assert.Equal(t, "sui.reports.0xa11ce", js.messages[0].subject)

		got := &report.TransactionReport{}
		require.NoError(t, json.Unmarshal(js.messages[0].data, got))
		assert.Equal(t, testReport().Digest, got.Digest)
		assert.Equal(t, "1500", got.SuiAmountChange.String())
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		js := &fakeJetStream{err: errors.New("nats: timeout")}
		s := &NatsSender{js: js, subject: reportSubjectPrefix + "0xa11ce"}

		assert.NotPanics(t, func() {
			s.Send(context.Background(), testReport())
		})
		assert.ErrorIs(t, s.send(context.Background(), testReport()), ErrDeliveryFailed)
		assert.Empty(t, js.messages)
		assert.NoError(t, s.Close())
	})
}

type recordingSender struct {
	name  string
	calls *[]string
}

func (r recordingSender) Send(_ context.Context, tr *report.TransactionReport) {
	*r.calls = append(*r.calls, r.name+":"+tr.Digest)
}

func TestFanOut(t *testing.T) {
	var calls []string
	f := FanOut{
		recordingSender{name: "http", calls: &calls},
		recordingSender{name: "kafka", calls: &calls},
		recordingSender{name: "nats", calls: &calls},
	}

	f.Send(context.Background(), &report.TransactionReport{Digest: "d1"})

	assert.Equal(t, []string{"http:d1", "kafka:d1", "nats:d1"}, calls)
}
