package router

import (
	"net/http"
	"realty/config"
	"realty/internal/handlers/reminder"
	"realty/internal/handlers/viewing"
	"realty/transport/http/middleware"

	_ "realty/docs" // swagger spec

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Viewing  viewing.Handler
	Reminder reminder.Handler
}

type Middlewares struct {
	App  middleware.AppMiddleware
	Auth middleware.Auth
}

type Router struct {
	DomainHandlers DomainHandlers
	Middlewares    Middlewares
	Config         *config.Config
}

func New(domainHandlers DomainHandlers, middlewares Middlewares, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middlewares:    middlewares,
		Config:         cfg,
	}
}

// Handler builds the HTTP handler tree. health is mounted outside the rate
// limiter so probes are never throttled.
func (r *Router) Handler(health http.HandlerFunc) http.Handler {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.Recoverer)

	if corsConfig := r.Config.App.CORS; corsConfig.Enable {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	mux.Use(r.Middlewares.App.Tracing)

	mux.Get("/health", health)
	mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	mux.Group(func(limited chi.Router) {
		limited.Use(r.Middlewares.App.RateLimit())

		r.SetupRoutes(limited)
	})

	return mux
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Viewing.Router(routerGroup)

		routerGroup.Group(func(ops chi.Router) {
			ops.Use(r.Middlewares.Auth.APIKey)

			r.DomainHandlers.Reminder.Router(ops)
		})
	})
}
