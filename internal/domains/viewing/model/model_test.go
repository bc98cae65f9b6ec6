package model_test

import (
	"realty/internal/domains/viewing/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{model.StatusScheduled, model.StatusConfirmed, true},
		{model.StatusScheduled, model.StatusCompleted, true},
		{model.StatusScheduled, model.StatusCancelled, true},
		{model.StatusConfirmed, model.StatusCompleted, true},
		{model.StatusConfirmed, model.StatusCancelled, true},
		{model.StatusConfirmed, model.StatusScheduled, false},
		{model.StatusCancelled, model.StatusScheduled, false},
		{model.StatusCompleted, model.StatusCancelled, false},
		{model.StatusScheduled, model.StatusScheduled, false},
		{"unknown", model.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}
