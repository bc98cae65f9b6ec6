package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"realty/config"
	"realty/infras/otel/mocks"
	"realty/shared/cache"
	cacheMocks "realty/shared/cache/mocks"
	"realty/shared/constant"
	"realty/transport/http/middleware"
)

func actorEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, _ := r.Context().Value(constant.ContextKeyUserID).(string)
		_, _ = w.Write([]byte(actor))
	})
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantCode   int
	}{
		{name: "valid key", configured: "secret", header: "secret", wantCode: http.StatusOK},
		{name: "missing key", configured: "secret", wantCode: http.StatusUnauthorized},
		{name: "wrong key", configured: "secret", header: "guess", wantCode: http.StatusForbidden},
		{name: "not configured", header: "anything", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			handler := middleware.NewAuthMiddleware(mocks.NewOtel(), cfg).APIKey(actorEcho())

			req := httptest.NewRequest(http.MethodGet, "/v1/reminders/stats", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, constant.ContextOps, rec.Body.String())
			}
		})
	}
}

func rateLimitConfig(enable bool, maxRequests int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = maxRequests
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		handler := middleware.NewAppMiddleware(mocks.NewOtel(), rateLimitConfig(false, 1), mockCache).RateLimit()(actorEcho())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/viewings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("first request opens the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), "limiter:203.0.113.7", gomock.Any()).Return(cache.Nil)
		mockCache.EXPECT().Save(gomock.Any(), "limiter:203.0.113.7", 1, 60).Return(nil)

		handler := middleware.NewAppMiddleware(mocks.NewOtel(), rateLimitConfig(true, 5), mockCache).RateLimit()(actorEcho())

		req := httptest.NewRequest(http.MethodGet, "/v1/viewings", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "4", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value any) error {
				*(value.(*int)) = 5

				return nil
			})

		handler := middleware.NewAppMiddleware(mocks.NewOtel(), rateLimitConfig(true, 5), mockCache).RateLimit()(actorEcho())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/viewings", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRetryAfter))
	})

	t.Run("cache outage fails open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: connection refused"))

		handler := middleware.NewAppMiddleware(mocks.NewOtel(), rateLimitConfig(true, 5), mockCache).RateLimit()(actorEcho())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/viewings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTracing(t *testing.T) {
	handler := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil).Tracing(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
