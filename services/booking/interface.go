package booking

import (
	"context"

	"roomly/services/availability"
)

// StartTimesResult lists the selectable start hours for a date, both raw and
// formatted for dropdown population.
type StartTimesResult struct {
	PlaceID    string   `json:"placeId"`
	Date       string   `json:"date"`
	StartHours []int    `json:"startHours"`
	StartTimes []string `json:"startTimes"`
}

// EndTimesResult lists the selectable end hours for a date and start hour.
type EndTimesResult struct {
	PlaceID   string   `json:"placeId"`
	Date      string   `json:"date"`
	StartHour int      `json:"startHour"`
	EndHours  []int    `json:"endHours"`
	EndTimes  []string `json:"endTimes"`
}

// RangeCheckResult is the outcome of an availability probe for one candidate
// range.
type RangeCheckResult struct {
	PlaceID   string `json:"placeId"`
	Date      string `json:"date"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Available bool   `json:"available"`
}

// DaySummary is the day-level availability view the calendar renders from:
// cell coloring from the percentage, day disabling from the unbookable flag,
// and the detail panel from the per-hour statuses.
type DaySummary struct {
	Date       string                       `json:"date"`
	Window     availability.OperatingWindow `json:"window"`
	Percentage int                          `json:"percentage"`
	Unbookable bool                         `json:"unbookable"`
	Hours      []availability.HourStatus    `json:"hours"`
}

// AvailabilityService answers every availability question the booking UI
// asks. All operations are reads over a snapshot of committed reservations.
type AvailabilityService interface {
	GetStartTimes(ctx context.Context, placeID, date string) (*StartTimesResult, error)
	GetEndTimes(ctx context.Context, placeID, date string, startHour int) (*EndTimesResult, error)
	CheckRange(ctx context.Context, placeID, date string, startHour, endHour int) (*RangeCheckResult, error)
	GetDaySummary(ctx context.Context, placeID, date string) (*DaySummary, error)
	GetCalendar(ctx context.Context, placeID, from, to string) ([]DaySummary, error)
}
