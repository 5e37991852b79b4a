package confirmation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
	"github.com/Mantelijo/sui-wallet-listener/internal/report"
)

const (
	sinkNats = "nats"

	// ReportStreamName is the JetStream stream holding transaction reports.
	ReportStreamName = "SUI_REPORTS"

	reportSubjectPrefix  = "sui.reports."
	reportStreamSubjects = reportSubjectPrefix + "*"
	reportRetention      = 30 * 24 * time.Hour
)

type jetStreamPublisher interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// NatsSender publishes reports to JetStream on sui.reports.<address>, where
// address is the monitored wallet.
type NatsSender struct {
	nc      *nats.Conn
	js      jetStreamPublisher
	subject string
	metrics *metrics.Metrics
}

var _ Sender = (*NatsSender)(nil)

// NewNatsSender connects to NATS and creates the report stream if it does not
// exist yet.
func NewNatsSender(ctx context.Context, natsUrl, monitoredAddress string, m *metrics.Metrics) (*NatsSender, error) {
	nc, err := nats.Connect(natsUrl,
		nats.Name("sui-wallet-listener"),
		nats.Timeout(10*time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	if err := ensureReportStream(ctx, js); err != nil {
		nc.Close()
		return nil, err
	}

	slog.Info("initialized nats report sink",
		slog.String("url", natsUrl),
		slog.String("stream", ReportStreamName),
	)

	return &NatsSender{
		nc:      nc,
		js:      js,
		subject: reportSubjectPrefix + monitoredAddress,
		metrics: m,
	}, nil
}

func ensureReportStream(ctx context.Context, js jetstream.JetStream) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := js.Stream(ctx, ReportStreamName); err == nil {
		return nil
	}

	slog.Info("creating jetstream stream", slog.String("stream", ReportStreamName))

	_, err := js.CreateStream(ctx, jetstream.StreamConfig{
		Name:        ReportStreamName,
		Description: "Sui wallet transaction reports",
		Subjects:    []string{reportStreamSubjects},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      reportRetention,
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", ReportStreamName, err)
	}
	return nil
}

func (s *NatsSender) Send(ctx context.Context, r *report.TransactionReport) {
	err := s.send(ctx, r)
	s.metrics.RecordDelivery(sinkNats, err)
	if err != nil {
		slog.Error("failed to publish transaction report to nats",
			slog.String("digest", r.Digest),
			slog.String("subject", s.subject),
			slog.Any("error", err),
		)
	}
}

func (s *NatsSender) send(ctx context.Context, r *report.TransactionReport) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	ack, err := s.js.Publish(ctx, s.subject, b)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	slog.Debug("published transaction report to nats",
		slog.String("digest", r.Digest),
		slog.String("stream", ack.Stream),
		slog.Uint64("sequence", ack.Sequence),
	)
	return nil
}

func (s *NatsSender) Close() error {
	if s.nc != nil {
		s.nc.Close()
	}
	return nil
}
