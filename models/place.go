package models

import "time"

// HourRange is a half-open [Start, End) range of whole hours within one day.
type HourRange struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Place is a bookable room listed by a host. Operating hours are resolved per
// weekday: WeekdayHours maps lowercase weekday names ("monday".."sunday") to
// that day's hours, and days absent from the map fall back to DefaultHours.
type Place struct {
	ID               string               `bson:"id" json:"id"`
	HostID           string               `bson:"hostId" json:"hostId,omitempty"`
	Name             string               `bson:"name" json:"name"`
	Description      string               `bson:"description,omitempty" json:"description,omitempty"`
	WeekdayHours     map[string]HourRange `bson:"weekdayHours,omitempty" json:"weekdayHours,omitempty"`
	DefaultHours     HourRange            `bson:"defaultHours" json:"defaultHours"`
	MinDurationHours int                  `bson:"minDurationHours" json:"minDurationHours"`
	CooldownMinutes  int                  `bson:"cooldownMinutes" json:"cooldownMinutes"`
	Active           bool                 `bson:"active" json:"active"`
	CreatedAt        time.Time            `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt        time.Time            `bson:"updatedAt" json:"updatedAt,omitzero"`
}
