package model

import (
	"realty/shared/model"
	"slices"
	"time"
)

const (
	TableName  = "viewings"
	EntityName = "viewing"

	FieldID              = "id"
	FieldPropertyID      = "property_id"
	FieldPropertyTitle   = "property_title"
	FieldPropertyAddress = "property_address"
	FieldVisitorName     = "visitor_name"
	FieldVisitorEmail    = "visitor_email"
	FieldVisitorPhone    = "visitor_phone"
	FieldViewingDate     = "viewing_date"
	FieldViewingTime     = "viewing_time"
	FieldDuration        = "duration"
	FieldNotes           = "notes"
	FieldStatus          = "status"
	FieldReminderSent    = "reminder_sent"
)

const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

const DefaultDuration = 30

// Cache key prefixes of the viewing read paths. Anything that writes a viewing
// row clears them.
const (
	CacheKeyGet    = "viewing:get"
	CacheKeyGetAll = "viewing:gets"
	CacheKeyCount  = "viewing:count"
)

var transitions = map[string][]string{
	StatusScheduled: {StatusConfirmed, StatusCompleted, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a viewing may move from one status to another.
// Completed and cancelled are terminal.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

// Viewing is a booked visit to a property. ViewingDate holds the slot start
// instant, ViewingTime its "HH:MM" label in the application timezone.
type Viewing struct {
	ID              string    `db:"id"`
	PropertyID      string    `db:"property_id"`
	PropertyTitle   string    `db:"property_title"`
	PropertyAddress string    `db:"property_address"`
	VisitorName     string    `db:"visitor_name"`
	VisitorEmail    string    `db:"visitor_email"`
	VisitorPhone    string    `db:"visitor_phone"`
	ViewingDate     time.Time `db:"viewing_date"`
	ViewingTime     string    `db:"viewing_time"`
	Duration        int       `db:"duration"`
	Notes           string    `db:"notes"`
	Status          string    `db:"status"`
	ReminderSent    bool      `db:"reminder_sent"`
	model.Metadata
}

func (v Viewing) IsCancelled() bool {
	return v.Status == StatusCancelled
}
