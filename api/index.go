package handler

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"todos/config"
	"todos/di"
	"todos/shared/logger"
	"todos/shared/timezone"
)

var (
	once    sync.Once
	app     http.Handler
	initErr error
)

func setup() {
	logger.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		initErr = err

		return
	}

	logger.Configure(cfg)
	timezone.Init(cfg.App.Timezone)

	// A frozen instance never runs the cleanup, so events are delivered
	// before the response instead of waiting in the async queue.
	cfg.Kafka.Sync = true

	server, _, err := di.InitializeService(context.Background(), cfg)
	if err != nil {
		initErr = err

		return
	}

	app = server.Handler()
}

// Handler is the serverless entry point. Dependencies are built on the first
// invocation and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(setup)

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	app.ServeHTTP(w, r)
}
