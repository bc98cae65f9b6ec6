package reminder_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"realty/config"
	"realty/infras/otel/mocks"
	reminderMocks "realty/internal/domains/reminder/mocks"
	"realty/internal/domains/reminder/model/dto"
	"realty/internal/domains/reminder/service"
	"realty/internal/handlers/reminder"
	"realty/shared/scheduler"
)

type fixture struct {
	router    http.Handler
	svc       *reminderMocks.MockReminder
	scheduler *scheduler.Scheduler
}

func newFixture(t *testing.T, job scheduler.JobFunc) fixture {
	t.Helper()

	svc := reminderMocks.NewMockReminder(gomock.NewController(t))
	sched := scheduler.New(&config.Config{}, mocks.NewOtel())

	if job != nil {
		require.NoError(t, sched.RegisterJob(service.JobName, time.Hour, job))
	}

	handler := reminder.New(svc, sched, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return fixture{router: router, svc: svc, scheduler: sched}
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestHandler_GetReminderStats(t *testing.T) {
	f := newFixture(t, nil)

	f.svc.EXPECT().GetReminderStats(gomock.Any(), gomock.Any()).Return(dto.ReminderStats{
		TotalViewingsInWindow: 3,
		RemindersSent:         1,
		RemindersNeeded:       2,
	}, nil)

	rec := serve(f.router, http.MethodGet, "/reminders/stats")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.ReminderStats `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.TotalViewingsInWindow)
	assert.Equal(t, 2, body.Data.RemindersNeeded)

	f.svc.EXPECT().GetReminderStats(gomock.Any(), gomock.Any()).Return(dto.ReminderStats{}, errors.New("db down"))

	rec = serve(f.router, http.MethodGet, "/reminders/stats")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_RunReminderJob(t *testing.T) {
	var scheduled atomic.Int32

	f := newFixture(t, func(context.Context) error {
		scheduled.Add(1)

		return nil
	})

	f.svc.EXPECT().Run(gomock.Any()).DoAndReturn(func(context.Context) (dto.ReminderJobResult, error) {
		status, _ := f.scheduler.JobStatus(service.JobName)
		assert.True(t, status.IsRunning, "manual runs hold the job guard")

		return dto.ReminderJobResult{Success: true, RemindersSent: 2, Errors: []dto.ReminderError{}}, nil
	})

	rec := serve(f.router, http.MethodPost, "/reminders/run")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reminders_sent":2`)
	assert.Zero(t, scheduled.Load(), "the scheduled function is not used for manual runs")

	status, _ := f.scheduler.JobStatus(service.JobName)
	assert.Equal(t, int64(1), status.Runs)
	assert.False(t, status.IsRunning)
}

func TestHandler_RunReminderJob_ReturnsOwnResult(t *testing.T) {
	f := newFixture(t, func(context.Context) error { return nil })

	gomock.InOrder(
		f.svc.EXPECT().Run(gomock.Any()).Return(dto.ReminderJobResult{Success: true, RemindersSent: 3, Errors: []dto.ReminderError{}}, nil),
		f.svc.EXPECT().Run(gomock.Any()).Return(dto.ReminderJobResult{Success: true, RemindersSent: 0, Errors: []dto.ReminderError{}}, nil),
	)

	first := serve(f.router, http.MethodPost, "/reminders/run")
	require.NoError(t, f.scheduler.RunJob(context.Background(), service.JobName))
	second := serve(f.router, http.MethodPost, "/reminders/run")

	assert.Contains(t, first.Body.String(), `"reminders_sent":3`)
	assert.Contains(t, second.Body.String(), `"reminders_sent":0`)
}

func TestHandler_RunReminderJob_ScanFailed(t *testing.T) {
	f := newFixture(t, func(context.Context) error { return nil })

	f.svc.EXPECT().Run(gomock.Any()).Return(dto.ReminderJobResult{Success: false, Errors: []dto.ReminderError{}}, service.ErrScanFailed)

	rec := serve(f.router, http.MethodPost, "/reminders/run")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)

	status, _ := f.scheduler.JobStatus(service.JobName)
	assert.Equal(t, service.ErrScanFailed.Error(), status.LastError)
}

func TestHandler_RunReminderJob_AlreadyRunning(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	f := newFixture(t, func(context.Context) error {
		close(started)
		<-release

		return nil
	})

	done := make(chan error, 1)

	go func() { done <- f.scheduler.RunJob(context.Background(), service.JobName) }()

	<-started

	rec := serve(f.router, http.MethodPost, "/reminders/run")
	assert.Equal(t, http.StatusConflict, rec.Code)

	close(release)
	require.NoError(t, <-done)
}

func TestHandler_RunReminderJob_NotRegistered(t *testing.T) {
	f := newFixture(t, nil)

	rec := serve(f.router, http.MethodPost, "/reminders/run")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandler_GetSchedulerStatus(t *testing.T) {
	f := newFixture(t, func(context.Context) error { return nil })

	rec := serve(f.router, http.MethodGet, "/scheduler/jobs")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []scheduler.JobStatus `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, service.JobName, body.Data[0].Name)
	assert.False(t, body.Data[0].IsRunning)

	rec = serve(f.router, http.MethodGet, "/scheduler/jobs?name=unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
