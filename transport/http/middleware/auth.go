package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"realty/config"
	"realty/infras/otel"
	"realty/shared/constant"
	"realty/shared/failure"
	"realty/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	messageMissingAPIKey  = "Missing API key"
	messageInvalidAPIKey  = "Invalid API key"
	messageOpsUnavailable = "Operator endpoints are disabled"
)

// Auth guards operator endpoints. Public booking routes are not wrapped.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey admits requests whose X-API-Key header matches APP_API_KEY and tags
// them with the operator actor. With no key configured every request is refused.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "api_key",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		var err error

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		switch {
		case m.cfg.App.APIKey == "":
			log.Warn().Str("path", request.URL.Path).Msg("APP_API_KEY is not set, refusing operator request")

			err = failure.Forbidden(messageOpsUnavailable)
		case apiKey == "":
			err = failure.Unauthorized(messageMissingAPIKey)
		case subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) != 1:
			err = failure.Forbidden(messageInvalidAPIKey)
		}

		if err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextOps)

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
