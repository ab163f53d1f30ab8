package availability

import (
	"math"

	"roomly/models"
)

// BookingPercentage reports how full a day looks, 0..100, for calendar cell
// coloring. An hour counts as occupied when a raw minimum-duration probe
// starting there runs into some reservation's cooldown-extended interval.
// That covers hours inside a booking, hours inside a trailing cooldown, and
// hours whose gap to the next booking is too small to fit a booking at all.
// Hours that are merely too close to closing time do not count; short days
// would otherwise read as fuller than they are.
//
// The probe is deliberately not extended by its own cooldown: an hour just
// before an existing booking may be unselectable as a start time, but the
// room itself is idle then, and fullness tracks the room, not the picker.
func BookingPercentage(date string, window OperatingWindow, reservations []models.Reservation, policy BookingPolicy) int {
	total := window.EndHour - window.StartHour
	if total <= 0 {
		return 0
	}
	cd := CooldownHours(policy.CooldownMinutes)
	occupiedHours := 0
	for h := window.StartHour; h < window.EndHour; h++ {
		if hourBlocked(date, h, reservations, policy, cd) {
			occupiedHours++
		}
	}
	return int(math.Round(float64(occupiedHours) / float64(total) * 100))
}

// IsDateCompletelyUnbookable reports whether nothing fits on the date: no
// valid start time exists at all. A true result is a valid outcome, not an
// error; the calendar disables the day.
func IsDateCompletelyUnbookable(date string, window OperatingWindow, reservations []models.Reservation, policy BookingPolicy) bool {
	return len(ValidStartTimes(date, window, reservations, policy)) == 0
}

// hourBlocked: the raw probe [h, h+minDuration) overlaps some reservation's
// occupied interval on the date.
func hourBlocked(date string, h int, reservations []models.Reservation, policy BookingPolicy, cooldownHours float64) bool {
	probe := interval{start: float64(h), end: float64(h + policy.MinDurationHours)}
	for _, r := range reservations {
		if r.Date != date {
			continue
		}
		if probe.overlaps(occupied(r.StartHour, r.EndHour, cooldownHours)) {
			return true
		}
	}
	return false
}

// HourStatuses classifies every hour of [window.StartHour, window.EndHour]
// for the availability detail panel. Exactly one status applies per hour,
// assigned in precedence order Booked > Cooldown > Conflicted > Past >
// DayEnd > Available. Pass now == nil for dates where past filtering does
// not apply.
func HourStatuses(date string, window OperatingWindow, reservations []models.Reservation, policy BookingPolicy, now *BusinessTime) []HourStatus {
	cd := CooldownHours(policy.CooldownMinutes)
	statuses := make([]HourStatus, 0, window.EndHour-window.StartHour+1)
	for h := window.StartHour; h <= window.EndHour; h++ {
		statuses = append(statuses, HourStatus{Hour: h, Status: hourStatus(date, h, window, reservations, policy, cd, now)})
	}
	return statuses
}

func hourStatus(date string, h int, window OperatingWindow, reservations []models.Reservation, policy BookingPolicy, cooldownHours float64, now *BusinessTime) SlotStatus {
	for _, r := range reservations {
		if r.Date != date {
			continue
		}
		if h >= r.StartHour && h < r.EndHour {
			return StatusBooked
		}
		if h >= r.EndHour && float64(h) < float64(r.EndHour)+cooldownHours {
			return StatusCooldown
		}
	}
	if h < window.EndHour {
		c := Candidate{Date: date, StartHour: h, EndHour: h + policy.MinDurationHours}
		if HasConflict(c, reservations, cooldownHours) {
			return StatusConflicted
		}
	}
	if now != nil && IsPastHour(*now, date, h) {
		return StatusPast
	}
	if h == window.EndHour {
		return StatusDayEnd
	}
	return StatusAvailable
}
