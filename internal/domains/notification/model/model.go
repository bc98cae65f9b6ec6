package model

import (
	viewingModel "realty/internal/domains/viewing/model"
	"time"
)

const defaultPropertyTitle = "the property"

// ViewingDetails is everything a visitor-facing message needs about one viewing.
type ViewingDetails struct {
	ViewingID       string
	VisitorName     string
	VisitorEmail    string
	VisitorPhone    string
	PropertyTitle   string
	PropertyAddress string
	ViewingDate     time.Time
	ViewingTime     string
	Duration        int
	Notes           string
}

func (d ViewingDetails) Title() string {
	if d.PropertyTitle == "" {
		return defaultPropertyTitle
	}

	return d.PropertyTitle
}

func FromViewing(v viewingModel.Viewing) ViewingDetails {
	return ViewingDetails{
		ViewingID:       v.ID,
		VisitorName:     v.VisitorName,
		VisitorEmail:    v.VisitorEmail,
		VisitorPhone:    v.VisitorPhone,
		PropertyTitle:   v.PropertyTitle,
		PropertyAddress: v.PropertyAddress,
		ViewingDate:     v.ViewingDate,
		ViewingTime:     v.ViewingTime,
		Duration:        v.Duration,
		Notes:           v.Notes,
	}
}
