package service_test

import (
	"context"
	"realty/internal/domains/viewing/model"
	"realty/internal/domains/viewing/repository"
	gDto "realty/shared/dto"
	"realty/shared/timezone"
	"sync"
	"time"
)

// memoryStore is an in-process viewing store that enforces the same
// one-live-booking-per-slot rule as the partial unique index.
type memoryStore struct {
	mu       sync.Mutex
	viewings []model.Viewing
}

func (m *memoryStore) Insert(_ context.Context, viewing model.Viewing) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.viewings {
		if v.PropertyID == viewing.PropertyID && v.ViewingDate.Equal(viewing.ViewingDate) &&
			v.ViewingTime == viewing.ViewingTime && !v.IsCancelled() {
			return repository.ErrSlotTaken
		}
	}

	m.viewings = append(m.viewings, viewing)

	return nil
}

func (m *memoryStore) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Viewing, error) {
	_, args := filter.GetWhereClause()

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.viewings {
		if v.ID == args[model.FieldID] {
			return v, nil
		}
	}

	return model.Viewing{}, nil
}

func (m *memoryStore) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Viewing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]model.Viewing(nil), m.viewings...), nil
}

func (m *memoryStore) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.viewings), nil
}

func (m *memoryStore) GetByPropertyOnDay(_ context.Context, propertyID string, day time.Time) ([]model.Viewing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Viewing

	for _, v := range m.viewings {
		if v.PropertyID == propertyID && timezone.SameDay(v.ViewingDate, day) {
			out = append(out, v)
		}
	}

	return out, nil
}

func (m *memoryStore) GetInDateRange(_ context.Context, start, end time.Time, status string) ([]model.Viewing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Viewing

	for _, v := range m.viewings {
		if v.Status == status && !v.ViewingDate.Before(start) && !v.ViewingDate.After(end) {
			out = append(out, v)
		}
	}

	return out, nil
}

func (m *memoryStore) MarkReminderSent(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, v := range m.viewings {
		if v.ID == id && !v.ReminderSent {
			m.viewings[i].ReminderSent = true

			return true, nil
		}
	}

	return false, nil
}

func (m *memoryStore) UpdateStatus(_ context.Context, id, from, to, _ string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, v := range m.viewings {
		if v.ID == id && v.Status == from {
			m.viewings[i].Status = to

			return true, nil
		}
	}

	return false, nil
}
