package di

import (
	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/infras/kafka"
)

// provideKafkaClient returns nil without brokers so the publisher falls back
// to a no-op. The cleanup flushes queued events.
func provideKafkaClient(cfg *config.Config) (kafka.Client, func()) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, func() {}
	}

	client := kafka.New(cfg)

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to flush Kafka producer")
		}
	}
}
