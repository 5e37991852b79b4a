package confirmation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	saramamocks "github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaSender(t *testing.T) {
	t.Run("publishes the report", func(t *testing.T) {
		producer := saramamocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			payload := map[string]interface{}{}
			if err := json.Unmarshal(val, &payload); err != nil {
				return err
			}
			if payload["suiTransactionDigest"] != testReport().Digest {
				return errors.New("unexpected digest")
			}
			return nil
		})

		s := NewKafkaSender(producer, "sui-transaction-reports", nil)
		s.Send(context.Background(), testReport())

		require.NoError(t, s.Close())
	})

	t.Run("producer failure is swallowed", func(t *testing.T) {
		producer := saramamocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		s := NewKafkaSender(producer, "sui-transaction-reports", nil)
		assert.NotPanics(t, func() {
			s.Send(context.Background(), testReport())
		})

		err := s.send(testReport())
		assert.ErrorIs(t, err, ErrDeliveryFailed)
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)

		require.NoError(t, s.Close())
	})
}
