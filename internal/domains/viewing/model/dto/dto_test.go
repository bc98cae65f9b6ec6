package dto_test

import (
	"realty/internal/domains/viewing/model"
	"realty/internal/domains/viewing/model/dto"
	"realty/shared/timezone"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookViewingRequest_Slot(t *testing.T) {
	req := dto.BookViewingRequest{ViewingDate: "2026-03-01", ViewingTime: "10:30"}

	slot, err := req.Slot()
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01 10:30", timezone.Format(slot, "2006-01-02 15:04"))

	req.ViewingTime = "25:00"
	_, err = req.Slot()
	assert.Error(t, err)
}

func TestBookViewingRequest_ToModel(t *testing.T) {
	req := dto.BookViewingRequest{
		PropertyID:   "42",
		VisitorName:  "Jane Doe",
		VisitorEmail: "jane@example.com",
		ViewingDate:  "2026-03-01",
		ViewingTime:  "10:00",
	}

	slot, err := req.Slot()
	require.NoError(t, err)

	viewing := req.ToModel("guest", slot)

	assert.NotEmpty(t, viewing.ID)
	assert.Equal(t, model.StatusScheduled, viewing.Status)
	assert.Equal(t, model.DefaultDuration, viewing.Duration)
	assert.False(t, viewing.ReminderSent)
	assert.Equal(t, "guest", viewing.CreatedBy)
	assert.Equal(t, slot, viewing.ViewingDate)

	req.Duration = 45
	assert.Equal(t, 45, req.ToModel("guest", slot).Duration)
}

func TestViewingResponse_FromModel(t *testing.T) {
	slot, err := timezone.ParseSlot("2026-03-01", "10:00")
	require.NoError(t, err)

	res := dto.ViewingResponse{}
	res.FromModel(model.Viewing{ID: "v-1", ViewingDate: slot, ViewingTime: "10:00", Status: model.StatusConfirmed})

	assert.Equal(t, "2026-03-01", res.ViewingDate)
	assert.Equal(t, "10:00", res.ViewingTime)
	assert.Equal(t, model.StatusConfirmed, res.Status)
}

func TestGetViewingsResponse_FromModels(t *testing.T) {
	res := dto.GetViewingsResponse{}
	res.FromModels([]model.Viewing{{ID: "a"}, {ID: "b"}}, 11, 5)

	assert.Len(t, res.Viewings, 2)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}

func TestViewingFilter_ToFilterGroup(t *testing.T) {
	reminded := false

	tests := []struct {
		name      string
		filter    dto.ViewingFilter
		wantWhere string
		wantErr   bool
	}{
		{
			name:      "empty",
			filter:    dto.ViewingFilter{},
			wantWhere: "",
		},
		{
			name:      "property and status",
			filter:    dto.ViewingFilter{PropertyID: "42", Status: model.StatusScheduled},
			wantWhere: "(viewings.property_id = :property_id AND viewings.status = :status)",
		},
		{
			name:      "reminder state",
			filter:    dto.ViewingFilter{ReminderSent: &reminded},
			wantWhere: "(viewings.reminder_sent = :reminder_sent)",
		},
		{
			name:      "date range",
			filter:    dto.ViewingFilter{From: "2026-03-01", To: "2026-03-31"},
			wantWhere: "(viewings.viewing_date >= :viewing_date_from AND viewings.viewing_date <= :viewing_date_to)",
		},
		{
			name:    "bad date",
			filter:  dto.ViewingFilter{From: "01/03/2026"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := tt.filter.ToFilterGroup()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			where, _ := group.GetWhereClause()
			assert.Equal(t, tt.wantWhere, where)
		})
	}
}
