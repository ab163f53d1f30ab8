package availability

import "roomly/models"

// interval is a half-open [start, end) range with real-valued endpoints.
// Cooldowns may be fractional hours, so endpoints are floats even though
// bookings begin and end on whole hours.
type interval struct {
	start float64
	end   float64
}

func (a interval) overlaps(b interval) bool {
	return a.start < b.end && b.start < a.end
}

// occupied returns the interval a booking actually blocks: its raw time range
// extended forward by the cooldown. Every conflict question in this package
// reduces to overlap of occupied intervals; direct overlap, backward and
// forward cooldown bleed, and too-small gaps are all the same case.
func occupied(startHour, endHour int, cooldownHours float64) interval {
	return interval{start: float64(startHour), end: float64(endHour) + cooldownHours}
}

// Conflicts reports whether a candidate and an existing reservation cannot
// coexist: their cooldown-extended intervals overlap.
func Conflicts(c Candidate, r models.Reservation, cooldownHours float64) bool {
	return occupied(c.StartHour, c.EndHour, cooldownHours).
		overlaps(occupied(r.StartHour, r.EndHour, cooldownHours))
}

// HasConflict reports whether the candidate conflicts with any reservation on
// the same date.
func HasConflict(c Candidate, reservations []models.Reservation, cooldownHours float64) bool {
	for _, r := range reservations {
		if r.Date != c.Date {
			continue
		}
		if Conflicts(c, r, cooldownHours) {
			return true
		}
	}
	return false
}
