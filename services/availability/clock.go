package availability

import "time"

// BusinessTime is a moment in the business timezone, reduced to what the
// engine needs: the calendar date and the wall clock.
type BusinessTime struct {
	Date   string // "2006-01-02"
	Hour   int
	Minute int
}

// Clock reports the current time in the business timezone. The business runs
// in one fixed timezone regardless of where callers sit; injecting the clock
// keeps every computation deterministic under test.
type Clock interface {
	Now() BusinessTime
}

type fixedOffsetClock struct {
	loc *time.Location
}

// NewFixedOffsetClock returns a Clock pinned to a fixed UTC offset in
// minutes. No daylight-saving transitions are assumed.
func NewFixedOffsetClock(offsetMinutes int) Clock {
	return &fixedOffsetClock{loc: time.FixedZone("business", offsetMinutes*60)}
}

func (c *fixedOffsetClock) Now() BusinessTime {
	t := time.Now().In(c.loc)
	return BusinessTime{Date: t.Format(dateLayout), Hour: t.Hour(), Minute: t.Minute()}
}

// IsPastHour reports whether an hour on a date has already elapsed in
// business time. On the current date the running hour counts as elapsed too:
// at 14:35 the earliest bookable hour is 15. Dates compare lexicographically;
// the "2006-01-02" layout sorts chronologically.
func IsPastHour(now BusinessTime, date string, hour int) bool {
	switch {
	case date > now.Date:
		return false
	case date < now.Date:
		return true
	default:
		return hour <= now.Hour
	}
}

// FilterPastHours drops already-elapsed hours from a start-time candidate
// set. It composes on top of ValidStartTimes when presenting the current
// date; past filtering is orthogonal to conflict detection and stays out of
// the conflict rule.
func FilterPastHours(now BusinessTime, date string, hours []int) []int {
	kept := make([]int, 0, len(hours))
	for _, h := range hours {
		if !IsPastHour(now, date, h) {
			kept = append(kept, h)
		}
	}
	return kept
}
