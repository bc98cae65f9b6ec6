package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Viewing=MockViewingService

import (
	"context"
	"errors"
	"fmt"
	"realty/config"
	"realty/infras/otel"
	notificationModel "realty/internal/domains/notification/model"
	notificationService "realty/internal/domains/notification/service"
	"realty/internal/domains/viewing/event"
	"realty/internal/domains/viewing/model"
	"realty/internal/domains/viewing/model/dto"
	"realty/internal/domains/viewing/repository"
	"realty/shared"
	"realty/shared/cache"
	"realty/shared/constant"
	gDto "realty/shared/dto"
	"realty/shared/failure"
	"realty/shared/timezone"
	"realty/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	MessageSlotBooked     = "Time slot already booked"
	messageNotFound       = "viewing not found"
	messageStatusConflict = "viewing status changed concurrently, reload and retry"
)

type Viewing interface {
	HasConflict(ctx context.Context, propertyID string, viewingDate time.Time, viewingTime string, duration int) (bool, error)
	Book(ctx context.Context, req dto.BookViewingRequest) (dto.ViewingResponse, error)
	Get(ctx context.Context, id string) (dto.ViewingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetViewingsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.ViewingResponse, error)
}

type serviceImpl struct {
	repo      repository.Viewing
	notifier  notificationService.Notification
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Viewing,
	notifier notificationService.Notification,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Viewing {
	return &serviceImpl{
		repo:      repo,
		notifier:  notifier,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// HasConflict reports whether a non-cancelled viewing of the property already
// holds the same calendar day and "HH:MM" slot. Duration does not widen the
// slot: 09:00 for 45 minutes and 09:15 do not conflict.
func (s *serviceImpl) HasConflict(ctx context.Context, propertyID string, viewingDate time.Time, viewingTime string, _ int) (res bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasConflict")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	viewings, err := s.repo.GetByPropertyOnDay(ctx, propertyID, viewingDate)
	if err != nil {
		log.Error().Err(err).Str("propertyID", propertyID).Msg("failed to get viewings of property")

		return false, fmt.Errorf("failed to get viewings of property: %w", err)
	}

	for _, existing := range viewings {
		if existing.IsCancelled() || !timezone.SameDay(existing.ViewingDate, viewingDate) {
			continue
		}

		if existing.ViewingTime == viewingTime {
			return true, nil
		}
	}

	return false, nil
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookViewingRequest) (res dto.ViewingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	slot, err := req.Slot()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	conflict, err := s.HasConflict(ctx, req.PropertyID, slot, req.ViewingTime, req.Duration)
	if err != nil {
		return res, err
	}

	if conflict {
		return res, failure.Conflict(MessageSlotBooked) //nolint:wrapcheck
	}

	viewing := req.ToModel(shared.ActorFromContext(ctx), slot)

	if err = s.repo.Insert(ctx, viewing); err != nil {
		// a concurrent booking won the race between the check and the insert
		if errors.Is(err, repository.ErrSlotTaken) {
			return res, failure.Conflict(MessageSlotBooked) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create viewing")

		return res, fmt.Errorf("failed to create viewing: %w", err)
	}

	scope.SetAttribute("viewing.id", viewing.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, model.CacheKeyGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheKeyCount)
	}()

	if notifyErr := s.notifier.SendConfirmation(ctx, notificationModel.FromViewing(viewing)); notifyErr != nil {
		log.Warn().Err(notifyErr).Str("viewingID", viewing.ID).Msg("failed to send viewing confirmation")
	}

	s.publisher.Publish(ctx, event.TypeBooked, viewing)

	res.FromModel(viewing)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetViewingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyGetAll, params, filter)

	if s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for viewings")

		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get viewings")

		return res, fmt.Errorf("failed to get viewings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save viewings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyCount, params, filter)

	if s.cache.Get(ctx, cacheKey, &res) == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count viewings")

		return res, fmt.Errorf("failed to count viewings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save viewing count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ViewingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	if s.cache.Get(ctx, cacheKey, &res) == nil {
		return res, nil
	}

	viewing, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(viewing)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save viewing to cache")
		}
	}()

	return res, nil
}

// UpdateStatus applies a legal status transition. Cancelling notifies the
// visitor on a best-effort basis and frees the slot for new bookings.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.ViewingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	viewing, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if viewing.Status == req.Status {
		res.FromModel(viewing)

		return res, nil
	}

	if !model.CanTransition(viewing.Status, req.Status) {
		return res, failure.BadRequestFromString( //nolint:wrapcheck
			fmt.Sprintf("cannot change viewing status from %s to %s", viewing.Status, req.Status),
		)
	}

	actor := shared.ActorFromContext(ctx)

	updated, err := s.repo.UpdateStatus(ctx, id, viewing.Status, req.Status, actor)
	if err != nil {
		log.Error().Err(err).Str("viewingID", id).Msg("failed to update viewing status")

		return res, fmt.Errorf("failed to update viewing status: %w", err)
	}

	if !updated {
		return res, failure.Conflict(messageStatusConflict) //nolint:wrapcheck
	}

	viewing.Status = req.Status
	viewing.ModifiedAt = timezone.Now()
	viewing.ModifiedBy = actor

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheKeyGet, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete viewing from cache")
		}

		shared.InvalidateCaches(c, s.cache, model.CacheKeyGetAll)
		shared.InvalidateCaches(c, s.cache, model.CacheKeyCount)
	}()

	if viewing.IsCancelled() {
		notifyErr := s.notifier.SendCancellation(ctx, viewing.VisitorEmail, viewing.VisitorName, viewing.PropertyTitle, viewing.ViewingDate)
		if notifyErr != nil {
			log.Warn().Err(notifyErr).Str("viewingID", id).Msg("failed to send viewing cancellation")
		}
	}

	s.publisher.Publish(ctx, event.TypeStatusChanged, viewing)

	res.FromModel(viewing)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Viewing, error) {
	viewing, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("viewingID", id).Msg("failed to get viewing")

		return viewing, fmt.Errorf("failed to get viewing: %w", err)
	}

	if viewing.ID == constant.Empty {
		return viewing, failure.NotFound(messageNotFound) //nolint:wrapcheck
	}

	return viewing, nil
}
