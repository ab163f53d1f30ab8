package availability

import "roomly/models"

// ValidStartTimes returns, in ascending order, every hour at which a booking
// of the policy's minimum duration could start: the booking plus its cooldown
// must fit before the window closes, and it must not conflict with any
// reservation on the date. The window's end hour is never a valid start; it
// exists only as a day-end marker.
func ValidStartTimes(date string, window OperatingWindow, reservations []models.Reservation, policy BookingPolicy) []int {
	cd := CooldownHours(policy.CooldownMinutes)
	starts := make([]int, 0, window.EndHour-window.StartHour)
	for h := window.StartHour; h < window.EndHour; h++ {
		if !fitsBeforeClose(h, window, policy, cd) {
			continue
		}
		c := Candidate{Date: date, StartHour: h, EndHour: h + policy.MinDurationHours}
		if HasConflict(c, reservations, cd) {
			continue
		}
		starts = append(starts, h)
	}
	return starts
}

// ValidEndTimes returns, in ascending order, every hour at which a booking
// starting at startHour could end: at least the minimum duration long, its
// cooldown inside the window, and conflict-free against the reservations.
//
// Whenever startHour comes from ValidStartTimes with the same inputs, the
// result is non-empty and every returned end hour passes IsRangeAvailable;
// all three share one conflict rule, so the contract holds by construction.
func ValidEndTimes(date string, startHour int, window OperatingWindow, reservations []models.Reservation, policy BookingPolicy) []int {
	cd := CooldownHours(policy.CooldownMinutes)
	ends := make([]int, 0, window.EndHour-startHour)
	for e := startHour + policy.MinDurationHours; e <= window.EndHour; e++ {
		if float64(e)+cd > float64(window.EndHour) {
			break
		}
		c := Candidate{Date: date, StartHour: startHour, EndHour: e}
		if HasConflict(c, reservations, cd) {
			continue
		}
		ends = append(ends, e)
	}
	return ends
}

// IsRangeAvailable reports whether the proposed [startHour, endHour) booking
// is non-empty and conflict-free. The committing side must re-check this
// against a fresh read inside its transaction; the snapshot given here can go
// stale between read and commit.
func IsRangeAvailable(date string, startHour, endHour int, reservations []models.Reservation, cooldownHours float64) bool {
	if endHour <= startHour {
		return false
	}
	c := Candidate{Date: date, StartHour: startHour, EndHour: endHour}
	return !HasConflict(c, reservations, cooldownHours)
}

// fitsBeforeClose reports whether a minimum-duration booking starting at h,
// plus its own cooldown, completes by the window's end.
func fitsBeforeClose(h int, window OperatingWindow, policy BookingPolicy, cooldownHours float64) bool {
	return float64(h+policy.MinDurationHours)+cooldownHours <= float64(window.EndHour)
}
