package dto

import (
	"fmt"
	"realty/internal/domains/viewing/model"
	"realty/shared"
	"realty/shared/constant"
	gDto "realty/shared/dto"
	gModel "realty/shared/model"
	"realty/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type BookViewingRequest struct {
	PropertyID      string `json:"property_id"      validate:"required,max=64"`
	PropertyTitle   string `json:"property_title"   validate:"omitempty,max=200"`
	PropertyAddress string `json:"property_address" validate:"omitempty,max=300"`
	VisitorName     string `json:"visitor_name"     validate:"required,max=100"`
	VisitorEmail    string `json:"visitor_email"    validate:"required,email,max=100"`
	VisitorPhone    string `json:"visitor_phone"    validate:"omitempty,e164"`
	ViewingDate     string `json:"viewing_date"     validate:"required,date"`
	ViewingTime     string `json:"viewing_time"     validate:"required,timeofday"`
	Duration        int    `json:"duration"         validate:"omitempty,min=1,max=480"`
	Notes           string `json:"notes"            validate:"omitempty,max=1000"`
}

// Slot returns the start instant of the requested viewing.
func (r *BookViewingRequest) Slot() (time.Time, error) {
	slot, err := timezone.ParseSlot(r.ViewingDate, r.ViewingTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid viewing slot: %w", err)
	}

	return slot, nil
}

func (r *BookViewingRequest) ToModel(actor string, slot time.Time) model.Viewing {
	duration := r.Duration
	if duration == 0 {
		duration = model.DefaultDuration
	}

	return model.Viewing{
		ID:              uuid.NewString(),
		PropertyID:      r.PropertyID,
		PropertyTitle:   r.PropertyTitle,
		PropertyAddress: r.PropertyAddress,
		VisitorName:     r.VisitorName,
		VisitorEmail:    r.VisitorEmail,
		VisitorPhone:    r.VisitorPhone,
		ViewingDate:     slot,
		ViewingTime:     r.ViewingTime,
		Duration:        duration,
		Notes:           r.Notes,
		Status:          model.StatusScheduled,
		ReminderSent:    false,
		Metadata:        gModel.NewMetadata(actor, timezone.Now()),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled"`
}

type ViewingResponse struct {
	ID              string `json:"id"`
	PropertyID      string `json:"property_id"`
	PropertyTitle   string `json:"property_title"`
	PropertyAddress string `json:"property_address"`
	VisitorName     string `json:"visitor_name"`
	VisitorEmail    string `json:"visitor_email"`
	VisitorPhone    string `json:"visitor_phone,omitempty"`
	ViewingDate     string `json:"viewing_date"`
	ViewingTime     string `json:"viewing_time"`
	Duration        int    `json:"duration"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status"`
	ReminderSent    bool   `json:"reminder_sent"`
	gDto.Metadata
}

func (r *ViewingResponse) FromModel(model model.Viewing) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.PropertyTitle = model.PropertyTitle
	r.PropertyAddress = model.PropertyAddress
	r.VisitorName = model.VisitorName
	r.VisitorEmail = model.VisitorEmail
	r.VisitorPhone = model.VisitorPhone
	r.ViewingDate = timezone.Format(model.ViewingDate, constant.DayFormat)
	r.ViewingTime = model.ViewingTime
	r.Duration = model.Duration
	r.Notes = model.Notes
	r.Status = model.Status
	r.ReminderSent = model.ReminderSent
	r.Metadata.FromModel(model.Metadata)
}

type GetViewingsResponse struct {
	Viewings  []ViewingResponse `json:"viewings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetViewingsResponse) FromModels(models []model.Viewing, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Viewings = make([]ViewingResponse, len(models))
	for i, mod := range models {
		r.Viewings[i].FromModel(mod)
	}
}

// ViewingFilter narrows listings. Empty fields are ignored.
type ViewingFilter struct {
	PropertyID   string `json:"property_id"   validate:"omitempty,max=64"`
	Status       string `json:"status"        validate:"omitempty,oneof=scheduled confirmed completed cancelled"`
	From         string `json:"from"          validate:"omitempty,date"`
	To           string `json:"to"            validate:"omitempty,date"`
	ReminderSent *bool  `json:"reminder_sent"`
}

func (f *ViewingFilter) ToFilterGroup() (gDto.FilterGroup, error) {
	filters := []any{}

	if f.PropertyID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldPropertyID,
			Value:    f.PropertyID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if f.Status != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    f.Status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if f.ReminderSent != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldReminderSent,
			Value:    *f.ReminderSent,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if f.From != "" {
		from, err := timezone.Parse(constant.DayFormat, f.From)
		if err != nil {
			return gDto.FilterGroup{}, fmt.Errorf("invalid from date: %w", err)
		}

		filters = append(filters, gDto.Filter{
			ArgName:  "viewing_date_from",
			Field:    model.FieldViewingDate,
			Value:    from,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if f.To != "" {
		to, err := timezone.Parse(constant.DayFormat, f.To)
		if err != nil {
			return gDto.FilterGroup{}, fmt.Errorf("invalid to date: %w", err)
		}

		// inclusive of the whole "to" day
		filters = append(filters, gDto.Filter{
			ArgName:  "viewing_date_to",
			Field:    model.FieldViewingDate,
			Value:    to.AddDate(0, 0, 1).Add(-time.Nanosecond),
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		})
	}

	return gDto.And(filters...), nil
}
