package handler

import (
	"net/http"
	"realty/config"
	"realty/di"
	"realty/shared/logger"
	"realty/transport/http/response"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once    sync.Once
	routes  http.Handler
	initErr error
)

// Handler is the serverless entrypoint. Timers do not survive between
// invocations, so the reminder job is triggered through POST /v1/reminders/run
// by an external cron instead of the in-process scheduler.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app, err := di.InitializeService()
		if err != nil {
			initErr = err

			return
		}

		routes = app.Handler()
	})

	if initErr != nil {
		log.Error().Err(initErr).Msg("Failed to initialize service")
		response.WithUnhealthy(w)

		return
	}

	r.RequestURI = r.URL.String()

	routes.ServeHTTP(w, r)
}
