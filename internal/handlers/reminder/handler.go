package reminder

import (
	"context"
	"errors"
	"net/http"
	"realty/infras/otel"
	"realty/internal/domains/reminder/model/dto"
	"realty/internal/domains/reminder/service"
	"realty/shared/constant"
	"realty/shared/failure"
	"realty/shared/scheduler"
	"realty/shared/timezone"
	"realty/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageJobRunning = "reminder job is already running"

type Handler struct {
	service   service.Reminder
	scheduler *scheduler.Scheduler
	otel      otel.Otel
}

func New(service service.Reminder, scheduler *scheduler.Scheduler, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		scheduler: scheduler,
		otel:      otel,
	}
}

// Router mounts the operator endpoints. Callers wrap router with the API key
// middleware.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/reminders/stats", handler.GetReminderStats)
	router.Post("/reminders/run", handler.RunReminderJob)
	router.Get("/scheduler/jobs", handler.GetSchedulerStatus)
}

// GetReminderStats reports the reminder window and how many viewings in it
// are already reminded.
// @Summary Reminder statistics
// @Tags Reminder
// @Produce json
// @Success 200 {object} response.Data[dto.ReminderStats] "Reminder window statistics"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reminders/stats [get]
// @Security ApiKeyAuth
func (handler *Handler) GetReminderStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReminderStats")
	defer scope.End()

	stats, err := handler.service.GetReminderStats(ctx, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reminder stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, stats)
}

// RunReminderJob runs the reminder job now. It shares the scheduler's guard,
// so a run already in progress is reported as a conflict.
// @Summary Run the reminder job
// @Tags Reminder
// @Produce json
// @Success 200 {object} response.Data[dto.ReminderJobResult] "Reminder run result"
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error "Reminder job is already running"
// @Failure 500 {object} response.Error
// @Router /v1/reminders/run [post]
// @Security ApiKeyAuth
func (handler *Handler) RunReminderJob(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunReminderJob")
	defer scope.End()

	var result dto.ReminderJobResult

	// the run outlives a disconnecting client so the batch is never cut short
	err := handler.scheduler.RunJobFunc(context.WithoutCancel(ctx), service.JobName, func(ctx context.Context) (err error) {
		result, err = handler.service.Run(ctx)

		return err
	})

	switch {
	case errors.Is(err, scheduler.ErrJobRunning):
		response.WithError(w, failure.Conflict(messageJobRunning))

		return
	case errors.Is(err, scheduler.ErrJobNotFound):
		scope.TraceError(err)
		response.WithError(w, failure.ServiceUnavailable(err))

		return
	}

	if err != nil && !errors.Is(err, service.ErrScanFailed) {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run reminder job")

		response.WithError(w, failure.InternalError(err))

		return
	}

	// a failed scan still produces a result, which carries success=false
	scope.SetAttributes(map[string]any{
		"reminder.success": result.Success,
		"reminder.sent":    result.RemindersSent,
	})

	code := http.StatusOK
	if !result.Success {
		code = http.StatusInternalServerError
	}

	response.WithJSON(w, code, result)
}

// GetSchedulerStatus lists every registered job with its run state.
// @Summary Scheduler status
// @Tags Reminder
// @Produce json
// @Param name query string false "Only this job"
// @Success 200 {object} response.Data[[]scheduler.JobStatus] "Registered jobs"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/scheduler/jobs [get]
// @Security ApiKeyAuth
func (handler *Handler) GetSchedulerStatus(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedulerStatus")
	defer scope.End()

	name := r.URL.Query().Get("name")
	if name == "" {
		response.WithJSON(w, http.StatusOK, handler.scheduler.AllJobsStatus())

		return
	}

	status, ok := handler.scheduler.JobStatus(name)
	if !ok {
		response.WithError(w, failure.NotFound("job not found"))

		return
	}

	response.WithJSON(w, http.StatusOK, []scheduler.JobStatus{status})
}
