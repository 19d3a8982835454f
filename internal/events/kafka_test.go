// internal/events/kafka_test.go
package events

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	config := mocks.NewTestConfig()
	config.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, config)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"id":"#123456"}` {
			return errors.New("unexpected payload " + string(val))
		}
		return nil
	})

	publisher := newKafkaPublisher(producer, "grocer.orders", nil)
	err := publisher.Publish(context.Background(), "#123456", []byte(`{"id":"#123456"}`))

	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_PublishFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := newKafkaPublisher(producer, "grocer.orders", nil)
	err := publisher.Publish(context.Background(), "#1", []byte("{}"))

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	publisher := newKafkaPublisher(producer, "grocer.orders", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, publisher.Publish(ctx, "#1", []byte("{}")), context.Canceled)
	require.NoError(t, publisher.Close())
}

func TestHeaderCarrier(t *testing.T) {
	msg := &sarama.ProducerMessage{}
	carrier := headerCarrier{msg: msg}

	carrier.Set("traceparent", "a")
	carrier.Set("traceparent", "b")
	carrier.Set("tracestate", "c")

	assert.Equal(t, "b", carrier.Get("traceparent"))
	assert.Equal(t, "", carrier.Get("missing"))
	assert.Equal(t, []string{"traceparent", "tracestate"}, carrier.Keys())
	assert.Len(t, msg.Headers, 2)
}

func TestLogPublisher(t *testing.T) {
	logger, hook := test.NewNullLogger()
	publisher := NewLogPublisher(logger)

	require.NoError(t, publisher.Publish(context.Background(), "#9", []byte(`{"a":1}`)))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "#9", entry.Data["key"])
}
