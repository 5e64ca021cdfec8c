package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todos/config"
)

func TestNew_WriterMode(t *testing.T) {
	tests := []struct {
		name      string
		sync      bool
		wantAsync bool
	}{
		{name: "async by default", sync: false, wantAsync: true},
		{name: "sync delivers before returning", sync: true, wantAsync: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Kafka.Brokers = []string{"localhost:9092"}
			cfg.Kafka.Sync = tt.sync

			client, ok := New(cfg).(*kafkaClientImpl)
			require.True(t, ok)
			t.Cleanup(func() { _ = client.Close() })

			assert.Equal(t, tt.wantAsync, client.writer.Async)
		})
	}
}

func TestDecodeKafkaMessage(t *testing.T) {
	type payload struct {
		TodoID string `json:"todoId"`
	}

	msg, err := (&Message{Key: "user-a", Value: payload{TodoID: "t1"}}).ToKafkaMessage()
	require.NoError(t, err)

	key, value, err := DecodeKafkaMessage[payload](msg)
	require.NoError(t, err)
	assert.Equal(t, "user-a", key)
	assert.Equal(t, "t1", value.TodoID)
}
