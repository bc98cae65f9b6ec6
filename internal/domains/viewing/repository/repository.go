package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"realty/infras/otel"
	"realty/infras/postgres"
	"realty/internal/domains/viewing/model"
	"realty/shared"
	"realty/shared/constant"
	gDto "realty/shared/dto"
	gRepo "realty/shared/repository"
	"realty/shared/timezone"
	"time"

	"github.com/lib/pq"
)

// ErrSlotTaken is returned by Insert when the partial unique index on
// (property_id, viewing_date, viewing_time) rejects the row.
var ErrSlotTaken = errors.New("viewing slot already taken")

type Viewing interface {
	Insert(ctx context.Context, viewing model.Viewing) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Viewing, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Viewing, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetByPropertyOnDay(ctx context.Context, propertyID string, day time.Time) ([]model.Viewing, error)
	GetInDateRange(ctx context.Context, start, end time.Time, status string) ([]model.Viewing, error)
	MarkReminderSent(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, id, from, to, actor string) (bool, error)
}

type statusUpdate struct {
	Status string `db:"status"`
}

type reminderUpdate struct {
	ReminderSent bool `db:"reminder_sent"`
}

type repositoryImpl struct {
	gRepo.Repository[model.Viewing]
}

func New(db *postgres.Connection, otel otel.Otel) Viewing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Viewing](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func field(name string, operator string, value any) gDto.Filter {
	return gDto.Filter{Field: name, Operator: operator, Value: value, Table: model.TableName}
}

func (r *repositoryImpl) Insert(ctx context.Context, viewing model.Viewing) error {
	err := r.Repository.Insert(ctx, viewing)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
		return fmt.Errorf("%w: %s", ErrSlotTaken, pqErr.Constraint)
	}

	return err //nolint:wrapcheck
}

// GetByPropertyOnDay returns every viewing of the property whose slot starts on
// the calendar day of day, cancelled ones included.
func (r *repositoryImpl) GetByPropertyOnDay(ctx context.Context, propertyID string, day time.Time) ([]model.Viewing, error) {
	start := timezone.Day(day)

	dayStart := field(model.FieldViewingDate, gDto.FilterOperatorGreaterEq, start)
	dayStart.ArgName = "day_start"

	dayEnd := field(model.FieldViewingDate, gDto.FilterOperatorLess, start.AddDate(0, 0, 1))
	dayEnd.ArgName = "day_end"

	return r.GetAll(ctx, gDto.QueryParams{}, gDto.And(
		field(model.FieldPropertyID, gDto.FilterOperatorEq, propertyID),
		dayStart,
		dayEnd,
	))
}

// GetInDateRange returns viewings in status whose slot starts within [start, end],
// oldest slot first.
func (r *repositoryImpl) GetInDateRange(ctx context.Context, start, end time.Time, status string) ([]model.Viewing, error) {
	windowStart := field(model.FieldViewingDate, gDto.FilterOperatorGreaterEq, start)
	windowStart.ArgName = "window_start"

	windowEnd := field(model.FieldViewingDate, gDto.FilterOperatorLessEq, end)
	windowEnd.ArgName = "window_end"

	params := gDto.QueryParams{SortBy: model.FieldViewingDate, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, gDto.And(
		field(model.FieldStatus, gDto.FilterOperatorEq, status),
		windowStart,
		windowEnd,
	))
}

// MarkReminderSent flips reminder_sent once. It reports false when the row was
// already marked or no longer exists.
func (r *repositoryImpl) MarkReminderSent(ctx context.Context, id string) (bool, error) {
	affected, err := r.Update(ctx, shared.TransformFields(reminderUpdate{ReminderSent: true}, constant.ContextSystem), gDto.And(
		field(model.FieldID, gDto.FilterOperatorEq, id),
		field(model.FieldReminderSent, gDto.FilterOperatorEq, false),
	))
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}

// UpdateStatus moves a viewing from one status to another. The from guard makes
// concurrent transitions lose instead of overwrite each other.
func (r *repositoryImpl) UpdateStatus(ctx context.Context, id, from, to, actor string) (bool, error) {
	fromStatus := field(model.FieldStatus, gDto.FilterOperatorEq, from)
	fromStatus.ArgName = "from_status"

	affected, err := r.Update(ctx, shared.TransformFields(statusUpdate{Status: to}, actor), gDto.And(
		field(model.FieldID, gDto.FilterOperatorEq, id),
		fromStatus,
	))
	if err != nil {
		return false, err //nolint:wrapcheck
	}

	return affected > 0, nil
}
