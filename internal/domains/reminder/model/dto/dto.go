package dto

import (
	"realty/shared/constant"
	"realty/shared/timezone"
	"time"
)

type ReminderError struct {
	ViewingID string `json:"viewing_id"`
	Error     string `json:"error"`
}

// ReminderJobResult summarises one reminder run. Success is false only when
// the candidate scan failed; per-viewing failures are listed in Errors.
type ReminderJobResult struct {
	Success       bool            `json:"success"`
	RemindersSent int             `json:"reminders_sent"`
	Errors        []ReminderError `json:"errors"`
	Timestamp     string          `json:"timestamp"`
}

func NewReminderJobResult(at time.Time) ReminderJobResult {
	return ReminderJobResult{
		Success:   true,
		Errors:    []ReminderError{},
		Timestamp: timezone.Format(at, constant.DateFormat),
	}
}

func (r *ReminderJobResult) AddError(viewingID string, err error) {
	r.Errors = append(r.Errors, ReminderError{ViewingID: viewingID, Error: err.Error()})
}

type ReminderStats struct {
	WindowStart           string `json:"window_start"`
	WindowEnd             string `json:"window_end"`
	TotalViewingsInWindow int    `json:"total_viewings_in_window"`
	RemindersSent         int    `json:"reminders_sent"`
	RemindersNeeded       int    `json:"reminders_needed"`
}

func NewReminderStats(start, end time.Time) ReminderStats {
	return ReminderStats{
		WindowStart: timezone.Format(start, constant.DateFormat),
		WindowEnd:   timezone.Format(end, constant.DateFormat),
	}
}
