package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"realty/config"
	"realty/infras/kafka"
	"realty/infras/otel"
	"realty/infras/postgres"
	"realty/shared/constant"
	"realty/shared/scheduler"
	"realty/transport/http/response"
	"realty/transport/http/router"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	drainTimeout      = 30 * time.Second
)

// Resources are the long-lived clients released after the server drains.
type Resources struct {
	DB    *postgres.Connection
	Kafka kafka.Client
	Otel  otel.Otel
}

type HTTP struct {
	Config    *config.Config
	Router    router.Router
	Scheduler *scheduler.Scheduler
	Resources Resources

	state   atomic.Int32
	handler http.Handler
	server  *http.Server
}

func New(cfg *config.Config, r router.Router, sched *scheduler.Scheduler, resources Resources) *HTTP {
	return &HTTP{
		Config:    cfg,
		Router:    r,
		Scheduler: sched,
		Resources: resources,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve listens until SIGINT or SIGTERM and then shuts down gracefully.
func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	done := make(chan struct{})

	go h.respondToSigterm(done)

	log.Info().Str("addr", h.server.Addr).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-done
}

// Handler returns the routed handler without listening, for serverless entrypoints.
func (h *HTTP) Handler() http.Handler {
	h.setup()

	return h.handler
}

func (h *HTTP) setup() {
	if h.handler != nil {
		return
	}

	h.handler = h.Router.Handler(h.health)
	h.state.Store(int32(ServerStateReady))
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) respondToSigterm(done chan<- struct{}) {
	defer close(done)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	<-signals

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")

	if h.Config.Server.Env != constant.ServerEnvDevelopment {
		// health turns unready so the load balancer stops routing here first
		h.state.Store(int32(ServerStateInGracePeriod))
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	h.state.Store(int32(ServerStateInCleanupPeriod))
	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout+time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain HTTP server")
	}

	h.cleanup(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// cleanup stops the scheduler, waits for in-flight jobs, then releases clients.
func (h *HTTP) cleanup(ctx context.Context) {
	if h.Scheduler != nil {
		if h.Scheduler.IsStarted() {
			h.Scheduler.Stop()
		}

		if err := h.Scheduler.Wait(ctx); err != nil {
			log.Error().Err(err).Msg("Scheduled jobs did not finish in time")
		}
	}

	if h.Resources.Kafka != nil {
		if err := h.Resources.Kafka.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close kafka client")
		}
	}

	if h.Resources.Otel != nil {
		if err := h.Resources.Otel.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}

	if h.Resources.DB != nil {
		if err := h.Resources.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database connections")
		}
	}
}
