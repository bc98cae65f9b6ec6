package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"realty/shared/failure"
	"realty/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "conflict", err: failure.Conflict("Time slot already booked"), wantCode: http.StatusConflict, wantBody: `{"error":"Time slot already booked"}`},
		{name: "not found", err: failure.NotFound("viewing not found"), wantCode: http.StatusNotFound, wantBody: `{"error":"viewing not found"}`},
		{name: "internal", err: errors.New("pq: password authentication failed"), wantCode: http.StatusInternalServerError, wantBody: `{"error":"internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "v-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"v-1"}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "REQUEST LIMIT EXCEEDED")
}
