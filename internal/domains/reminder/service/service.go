package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"realty/infras/otel"
	notificationModel "realty/internal/domains/notification/model"
	notificationService "realty/internal/domains/notification/service"
	"realty/internal/domains/reminder/model/dto"
	"realty/internal/domains/viewing/event"
	viewingModel "realty/internal/domains/viewing/model"
	viewingRepository "realty/internal/domains/viewing/repository"
	"realty/shared"
	"realty/shared/cache"
	"realty/shared/constant"
	"realty/shared/logger"
	"realty/shared/scheduler"
	"realty/shared/timezone"
	"time"
)

// JobName is the scheduler registration name of the reminder job.
const JobName = "viewing-reminders"

const (
	windowOpensAfter  = 23 * time.Hour
	windowClosesAfter = 25 * time.Hour
)

var ErrScanFailed = errors.New("reminder candidate scan failed")

// ComputeReminderWindow returns the [start, end] range of slot starts that are
// due a reminder at now.
func ComputeReminderWindow(now time.Time) (time.Time, time.Time) {
	return now.Add(windowOpensAfter), now.Add(windowClosesAfter)
}

type Reminder interface {
	FindViewingsNeedingReminders(ctx context.Context, now time.Time) ([]viewingModel.Viewing, error)
	GetReminderStats(ctx context.Context, now time.Time) (dto.ReminderStats, error)
	ExecuteReminderJob(ctx context.Context) dto.ReminderJobResult
	Run(ctx context.Context) (dto.ReminderJobResult, error)
	Job() scheduler.JobFunc
}

type serviceImpl struct {
	repo      viewingRepository.Viewing
	notifier  notificationService.Notification
	publisher event.Publisher
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo viewingRepository.Viewing,
	notifier notificationService.Notification,
	publisher event.Publisher,
	cache cache.RedisCache,
	otel otel.Otel,
) Reminder {
	return &serviceImpl{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		cache:     cache,
		otel:      otel,
	}
}

// windowSnapshot loads every scheduled viewing in the window at now, reminded
// or not. Stats and candidates are both derived from one snapshot.
func (s *serviceImpl) windowSnapshot(ctx context.Context, now time.Time) (time.Time, time.Time, []viewingModel.Viewing, error) {
	start, end := ComputeReminderWindow(now)

	viewings, err := s.repo.GetInDateRange(ctx, start, end, viewingModel.StatusScheduled)
	if err != nil {
		return start, end, nil, fmt.Errorf("failed to get viewings in reminder window: %w", err)
	}

	return start, end, viewings, nil
}

func (s *serviceImpl) FindViewingsNeedingReminders(ctx context.Context, now time.Time) (res []viewingModel.Viewing, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindViewingsNeedingReminders")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, _, viewings, err := s.windowSnapshot(ctx, now)
	if err != nil {
		return nil, err
	}

	res = make([]viewingModel.Viewing, 0, len(viewings))

	for _, viewing := range viewings {
		if !viewing.ReminderSent {
			res = append(res, viewing)
		}
	}

	scope.SetAttribute("reminder.candidates", len(res))

	return res, nil
}

func (s *serviceImpl) GetReminderStats(ctx context.Context, now time.Time) (res dto.ReminderStats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReminderStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, viewings, err := s.windowSnapshot(ctx, now)
	if err != nil {
		return res, err
	}

	res = dto.NewReminderStats(start, end)
	res.TotalViewingsInWindow = len(viewings)

	for _, viewing := range viewings {
		if viewing.ReminderSent {
			res.RemindersSent++
		} else {
			res.RemindersNeeded++
		}
	}

	return res, nil
}

// ExecuteReminderJob reminds every candidate in the current window. A failure
// on one viewing is recorded and the batch moves on.
func (s *serviceImpl) ExecuteReminderJob(ctx context.Context) dto.ReminderJobResult {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExecuteReminderJob")
	defer scope.End()

	jobLog := logger.Job(JobName)
	now := timezone.Now()
	res := dto.NewReminderJobResult(now)

	candidates, err := s.FindViewingsNeedingReminders(ctx, now)
	if err != nil {
		scope.TraceError(err)
		jobLog.Error().Err(err).Msg("failed to find viewings needing reminders")

		res.Success = false

		return res
	}

	for _, viewing := range candidates {
		// stop sending once the job deadline passes, but still account for every candidate
		if ctxErr := ctx.Err(); ctxErr != nil {
			res.AddError(viewing.ID, ctxErr)

			continue
		}

		marked, remindErr := s.remind(ctx, viewing)
		if remindErr != nil {
			jobLog.Error().Err(remindErr).Str("viewingID", viewing.ID).Msg("failed to remind visitor")
			res.AddError(viewing.ID, remindErr)

			continue
		}

		if marked {
			res.RemindersSent++
		}
	}

	if res.RemindersSent > 0 {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, viewingModel.CacheKeyGetAll)
		shared.InvalidateCaches(c, s.cache, viewingModel.CacheKeyCount)
	}

	scope.SetAttributes(map[string]any{
		"reminder.candidates": len(candidates),
		"reminder.sent":       res.RemindersSent,
		"reminder.errors":     len(res.Errors),
	})

	jobLog.Info().
		Int("candidates", len(candidates)).
		Int("sent", res.RemindersSent).
		Int("errors", len(res.Errors)).
		Msg("Reminder run complete")

	return res
}

// remind sends the reminder and then marks the viewing. It reports false when
// another run marked the viewing first. A marked viewing is dropped from the
// read cache; list and count caches are cleared once per run.
func (s *serviceImpl) remind(ctx context.Context, viewing viewingModel.Viewing) (bool, error) {
	if err := s.notifier.SendReminder(ctx, notificationModel.FromViewing(viewing)); err != nil {
		return false, fmt.Errorf("failed to send reminder: %w", err)
	}

	marked, err := s.repo.MarkReminderSent(ctx, viewing.ID)
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder as sent: %w", err)
	}

	if !marked {
		logger.Job(JobName).Warn().Str("viewingID", viewing.ID).Msg("viewing was already marked as reminded")

		return false, nil
	}

	if err = s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(viewingModel.CacheKeyGet, viewing.ID)); err != nil {
		logger.Job(JobName).Error().Err(err).Str("viewingID", viewing.ID).Msg("failed to delete viewing from cache")
	}

	viewing.ReminderSent = true
	s.publisher.Publish(ctx, event.TypeReminderSent, viewing)

	return true, nil
}

// Run executes one reminder pass and returns its result. The error is
// ErrScanFailed exactly when the result reports success=false.
func (s *serviceImpl) Run(ctx context.Context) (dto.ReminderJobResult, error) {
	res := s.ExecuteReminderJob(ctx)
	if !res.Success {
		return res, ErrScanFailed
	}

	return res, nil
}

// Job adapts Run to the scheduler.
func (s *serviceImpl) Job() scheduler.JobFunc {
	return func(ctx context.Context) error {
		_, err := s.Run(ctx)

		return err
	}
}
