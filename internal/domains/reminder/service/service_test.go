package service_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"realty/infras/otel/mocks"
	notificationMocks "realty/internal/domains/notification/mocks"
	notificationModel "realty/internal/domains/notification/model"
	"realty/internal/domains/reminder/service"
	"realty/internal/domains/viewing/event"
	viewingMocks "realty/internal/domains/viewing/mocks"
	"realty/internal/domains/viewing/model"
	"realty/internal/domains/viewing/repository"
	"realty/shared"
	cacheMocks "realty/shared/cache/mocks"
	"realty/shared/timezone"
)

// windowStore keeps viewings in memory and answers the two queries the
// reminder service issues.
type windowStore struct {
	repository.Viewing

	mu              sync.Mutex
	viewings        []model.Viewing
	scanErr         error
	markErr         map[string]error
	markedElsewhere map[string]bool
}

func newWindowStore(viewings ...model.Viewing) *windowStore {
	return &windowStore{viewings: viewings, markErr: map[string]error{}, markedElsewhere: map[string]bool{}}
}

func (s *windowStore) GetInDateRange(_ context.Context, start, end time.Time, status string) ([]model.Viewing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanErr != nil {
		return nil, s.scanErr
	}

	var res []model.Viewing

	for _, v := range s.viewings {
		if v.Status == status && !v.ViewingDate.Before(start) && !v.ViewingDate.After(end) {
			res = append(res, v)
		}
	}

	return res, nil
}

func (s *windowStore) MarkReminderSent(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.markErr[id]; err != nil {
		return false, err
	}

	if s.markedElsewhere[id] {
		return false, nil
	}

	for i := range s.viewings {
		if s.viewings[i].ID == id && !s.viewings[i].ReminderSent {
			s.viewings[i].ReminderSent = true

			return true, nil
		}
	}

	return false, nil
}

func (s *windowStore) find(id string) model.Viewing {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.viewings, func(v model.Viewing) bool { return v.ID == id })

	return s.viewings[i]
}

func viewingAt(id string, at time.Time) model.Viewing {
	return model.Viewing{
		ID:           id,
		PropertyID:   "42",
		VisitorName:  "Jane Doe",
		VisitorEmail: "jane@example.com",
		ViewingDate:  at,
		ViewingTime:  timezone.Format(at, "15:04"),
		Duration:     model.DefaultDuration,
		Status:       model.StatusScheduled,
	}
}

type fixture struct {
	svc       service.Reminder
	notifier  *notificationMocks.MockNotification
	publisher *viewingMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T, store *windowStore) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	notifier := notificationMocks.NewMockNotification(ctrl)
	publisher := viewingMocks.NewMockPublisher(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	return fixture{
		svc:       service.New(store, notifier, publisher, redisCache, mocks.NewOtel()),
		notifier:  notifier,
		publisher: publisher,
		cache:     redisCache,
	}
}

// expectInvalidation expects the cached copies of the given viewings to be
// dropped, followed by one clear of the list and count caches.
func (f fixture) expectInvalidation(ids ...string) {
	for _, id := range ids {
		f.cache.EXPECT().Delete(gomock.Any(), shared.BuildCacheKey(model.CacheKeyGet, id)).Return(nil)
	}

	f.cache.EXPECT().Clear(gomock.Any(), model.CacheKeyGetAll+":*").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), model.CacheKeyCount+":*").Return(nil)
}

func TestComputeReminderWindow(t *testing.T) {
	nows := []time.Time{
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 29, 0, 30, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 59, 59, 999, time.UTC),
		timezone.Now(),
	}

	for _, now := range nows {
		start, end := service.ComputeReminderWindow(now)

		assert.Greater(t, start.Sub(now), 22*time.Hour)
		assert.Less(t, start.Sub(now), 24*time.Hour)
		assert.Greater(t, end.Sub(now), 24*time.Hour)
		assert.Less(t, end.Sub(now), 26*time.Hour)
		assert.Equal(t, 2*time.Hour, end.Sub(start))
	}
}

func TestFindViewingsNeedingReminders(t *testing.T) {
	now := timezone.Now()

	cancelled := viewingAt("cancelled", now.Add(24*time.Hour))
	cancelled.Status = model.StatusCancelled

	reminded := viewingAt("reminded", now.Add(24*time.Hour))
	reminded.ReminderSent = true

	store := newWindowStore(
		viewingAt("due", now.Add(24*time.Hour)),
		viewingAt("window-start", now.Add(23*time.Hour)),
		viewingAt("window-end", now.Add(25*time.Hour)),
		viewingAt("too-early", now.Add(22*time.Hour)),
		viewingAt("two-days-out", now.Add(48*time.Hour)),
		cancelled,
		reminded,
	)

	f := newFixture(t, store)

	viewings, err := f.svc.FindViewingsNeedingReminders(context.Background(), now)
	require.NoError(t, err)

	ids := make([]string, len(viewings))
	for i, v := range viewings {
		ids[i] = v.ID
	}

	assert.ElementsMatch(t, []string{"due", "window-start", "window-end"}, ids)
	assert.NotContains(t, ids, "two-days-out")
}

func TestGetReminderStats(t *testing.T) {
	now := timezone.Now()

	sent := viewingAt("sent", now.Add(24*time.Hour))
	sent.ReminderSent = true

	confirmed := viewingAt("confirmed", now.Add(24*time.Hour))
	confirmed.Status = model.StatusConfirmed

	store := newWindowStore(
		sent,
		viewingAt("needed-1", now.Add(23*time.Hour+30*time.Minute)),
		viewingAt("needed-2", now.Add(24*time.Hour+30*time.Minute)),
		viewingAt("outside", now.Add(30*time.Hour)),
		confirmed,
	)

	f := newFixture(t, store)

	stats, err := f.svc.GetReminderStats(context.Background(), now)
	require.NoError(t, err)

	start, end := service.ComputeReminderWindow(now)

	assert.Equal(t, 3, stats.TotalViewingsInWindow)
	assert.Equal(t, 1, stats.RemindersSent)
	assert.Equal(t, 2, stats.RemindersNeeded)
	assert.Equal(t, stats.TotalViewingsInWindow, stats.RemindersSent+stats.RemindersNeeded)
	assert.Equal(t, timezone.Format(start, time.RFC3339), stats.WindowStart)
	assert.Equal(t, timezone.Format(end, time.RFC3339), stats.WindowEnd)

	store.scanErr = errors.New("connection refused")

	_, err = f.svc.GetReminderStats(context.Background(), now)
	assert.ErrorContains(t, err, "connection refused")
}

func TestGetReminderStats_ConservationAcrossRuns(t *testing.T) {
	now := timezone.Now()

	store := newWindowStore(
		viewingAt("a", now.Add(24*time.Hour)),
		viewingAt("b", now.Add(24*time.Hour+10*time.Minute)),
		viewingAt("c", now.Add(24*time.Hour+20*time.Minute)),
	)

	f := newFixture(t, store)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TypeReminderSent, gomock.Any()).AnyTimes()

	failing := errors.New("mailbox full")
	f.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, details notificationModel.ViewingDetails) error {
			if details.ViewingID == "b" {
				return failing
			}

			return nil
		}).AnyTimes()

	check := func() {
		stats, err := f.svc.GetReminderStats(context.Background(), timezone.Now())
		require.NoError(t, err)
		assert.Equal(t, stats.TotalViewingsInWindow, stats.RemindersSent+stats.RemindersNeeded)
	}

	f.expectInvalidation("a", "c")

	check()
	f.svc.ExecuteReminderJob(context.Background())
	check()

	stats, err := f.svc.GetReminderStats(context.Background(), timezone.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.RemindersSent)
	assert.Equal(t, 1, stats.RemindersNeeded)
}

func TestExecuteReminderJob_SendsOncePerViewing(t *testing.T) {
	store := newWindowStore(viewingAt("v-1", timezone.Now().Add(24*time.Hour)))
	f := newFixture(t, store)

	f.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, details notificationModel.ViewingDetails) error {
			assert.Equal(t, "v-1", details.ViewingID)
			assert.Equal(t, "jane@example.com", details.VisitorEmail)

			return nil
		}).Times(1)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TypeReminderSent, gomock.Any()).Do(
		func(_ context.Context, _ string, v model.Viewing) {
			assert.Equal(t, "v-1", v.ID)
			assert.True(t, v.ReminderSent)
		}).Times(1)
	f.cache.EXPECT().Delete(gomock.Any(), "viewing:get:v-1").Return(nil).Times(1)
	f.cache.EXPECT().Clear(gomock.Any(), "viewing:gets:*").Return(nil).Times(1)
	f.cache.EXPECT().Clear(gomock.Any(), "viewing:count:*").Return(nil).Times(1)

	first := f.svc.ExecuteReminderJob(context.Background())

	assert.True(t, first.Success)
	assert.Equal(t, 1, first.RemindersSent)
	assert.Empty(t, first.Errors)
	assert.NotEmpty(t, first.Timestamp)
	assert.True(t, store.find("v-1").ReminderSent)

	second := f.svc.ExecuteReminderJob(context.Background())

	assert.True(t, second.Success)
	assert.Equal(t, 0, second.RemindersSent)
	assert.Empty(t, second.Errors)
}

func TestExecuteReminderJob_ItemFailuresDoNotAbort(t *testing.T) {
	now := timezone.Now()

	store := newWindowStore(
		viewingAt("ok-1", now.Add(24*time.Hour)),
		viewingAt("send-fails", now.Add(24*time.Hour+5*time.Minute)),
		viewingAt("mark-fails", now.Add(24*time.Hour+10*time.Minute)),
		viewingAt("ok-2", now.Add(24*time.Hour+15*time.Minute)),
	)
	store.markErr["mark-fails"] = errors.New("deadlock detected")

	f := newFixture(t, store)

	f.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, details notificationModel.ViewingDetails) error {
			if details.ViewingID == "send-fails" {
				return errors.New("smtp timeout")
			}

			return nil
		}).Times(4)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TypeReminderSent, gomock.Any()).Times(2)
	f.expectInvalidation("ok-1", "ok-2")

	res := f.svc.ExecuteReminderJob(context.Background())

	assert.True(t, res.Success)
	assert.Equal(t, 2, res.RemindersSent)
	require.Len(t, res.Errors, 2)

	byID := map[string]string{}
	for _, e := range res.Errors {
		byID[e.ViewingID] = e.Error
	}

	assert.Contains(t, byID["send-fails"], "smtp timeout")
	assert.Contains(t, byID["mark-fails"], "deadlock detected")

	assert.True(t, store.find("ok-1").ReminderSent)
	assert.True(t, store.find("ok-2").ReminderSent)
	assert.False(t, store.find("send-fails").ReminderSent)
}

func TestExecuteReminderJob_ScanFailure(t *testing.T) {
	store := newWindowStore()
	store.scanErr = errors.New("connection refused")

	f := newFixture(t, store)

	res := f.svc.ExecuteReminderJob(context.Background())

	assert.False(t, res.Success)
	assert.Equal(t, 0, res.RemindersSent)
	assert.Empty(t, res.Errors)
	assert.NotEmpty(t, res.Timestamp)
}

func TestExecuteReminderJob_AlreadyMarkedElsewhere(t *testing.T) {
	store := newWindowStore(viewingAt("raced", timezone.Now().Add(24*time.Hour)))
	store.markedElsewhere["raced"] = true

	f := newFixture(t, store)
	f.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any()).Return(nil)

	res := f.svc.ExecuteReminderJob(context.Background())

	assert.True(t, res.Success)
	assert.Equal(t, 0, res.RemindersSent)
	assert.Empty(t, res.Errors)
}

func TestExecuteReminderJob_DeadlinePassed(t *testing.T) {
	now := timezone.Now()

	store := newWindowStore(
		viewingAt("a", now.Add(24*time.Hour)),
		viewingAt("b", now.Add(24*time.Hour+time.Minute)),
	)

	f := newFixture(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := f.svc.ExecuteReminderJob(ctx)

	assert.True(t, res.Success)
	assert.Equal(t, 0, res.RemindersSent)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, context.Canceled.Error(), res.Errors[0].Error)
}

func TestExecuteReminderJob_CacheFailureIsNotAnItemError(t *testing.T) {
	store := newWindowStore(viewingAt("v-1", timezone.Now().Add(24*time.Hour)))
	f := newFixture(t, store)

	f.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TypeReminderSent, gomock.Any())
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("redis down")).Times(2)

	res := f.svc.ExecuteReminderJob(context.Background())

	assert.True(t, res.Success)
	assert.Equal(t, 1, res.RemindersSent)
	assert.Empty(t, res.Errors)
	assert.True(t, store.find("v-1").ReminderSent)
}

func TestRun(t *testing.T) {
	store := newWindowStore(viewingAt("v-1", timezone.Now().Add(24*time.Hour)))
	f := newFixture(t, store)

	f.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any())
	f.expectInvalidation("v-1")

	res, err := f.svc.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.RemindersSent)

	store.scanErr = errors.New("connection refused")

	res, err = f.svc.Run(context.Background())
	assert.ErrorIs(t, err, service.ErrScanFailed)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Timestamp)
}

func TestJob(t *testing.T) {
	store := newWindowStore(viewingAt("v-1", timezone.Now().Add(24*time.Hour)))
	f := newFixture(t, store)

	f.notifier.EXPECT().SendReminder(gomock.Any(), gomock.Any()).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any())
	f.expectInvalidation("v-1")

	job := f.svc.Job()
	require.NoError(t, job(context.Background()))
	assert.True(t, store.find("v-1").ReminderSent)

	store.scanErr = errors.New("connection refused")

	assert.ErrorIs(t, job(context.Background()), service.ErrScanFailed)
}
