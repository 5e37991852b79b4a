package confirmation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"github.com/Mantelijo/sui-wallet-listener/internal/metrics"
	"github.com/Mantelijo/sui-wallet-listener/internal/report"
)

const sinkKafka = "kafka"

// NewKafkaProducer creates a synchronous producer that waits for all in sync
// replicas and does not retry.
func NewKafkaProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = "sui-wallet-listener"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 0
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return producer, nil
}

func NewKafkaSender(producer sarama.SyncProducer, topic string, m *metrics.Metrics) *KafkaSender {
	return &KafkaSender{
		producer: producer,
		topic:    topic,
		metrics:  m,
	}
}

var _ Sender = (*KafkaSender)(nil)

// KafkaSender publishes reports keyed by transaction digest, so reports of
// the same transaction land on the same partition.
type KafkaSender struct {
	producer sarama.SyncProducer
	topic    string
	metrics  *metrics.Metrics
}

func (s *KafkaSender) Send(_ context.Context, r *report.TransactionReport) {
	err := s.send(r)
	s.metrics.RecordDelivery(sinkKafka, err)
	if err != nil {
		slog.Error("failed to publish transaction report to kafka",
			slog.String("digest", r.Digest),
			slog.String("topic", s.topic),
			slog.Any("error", err),
		)
	}
}

func (s *KafkaSender) send(r *report.TransactionReport) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	partition, offset, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(r.Digest),
		Value: sarama.ByteEncoder(b),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(r.Type)},
			{Key: []byte("status"), Value: []byte(r.Status)},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	slog.Debug("published transaction report to kafka",
		slog.String("digest", r.Digest),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

func (s *KafkaSender) Close() error {
	return s.producer.Close()
}
