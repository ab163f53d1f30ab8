package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseHour parses an "HH:MM" clock value into a whole hour 0..23. Bookings
// are hour-granular, so the minutes part must be "00".
func ParseHour(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, newError(CodeInvalidTimeFormat, fmt.Sprintf("%q is not an HH:MM time", s))
	}
	// Atoi would accept a signed hour like "+9", so check the digits directly.
	for _, c := range parts[0] {
		if c < '0' || c > '9' {
			return 0, newError(CodeInvalidTimeFormat, fmt.Sprintf("%q has no valid hour", s))
		}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h > 23 {
		return 0, newError(CodeInvalidTimeFormat, fmt.Sprintf("%q has no valid hour", s))
	}
	if parts[1] != "00" {
		return 0, newError(CodeInvalidTimeFormat, fmt.Sprintf("%q is not on a whole-hour boundary", s))
	}
	return h, nil
}

// FormatHour24 renders a whole hour as "HH:00".
func FormatHour24(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// FormatHour12 renders a whole hour as "h:00 AM/PM".
func FormatHour12(hour int) string {
	period := "AM"
	h := hour % 24
	if h >= 12 {
		period = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:00 %s", h, period)
}

// CooldownHours converts a policy's cooldown minutes to fractional hours.
// No rounding: a 90 minute cooldown blocks exactly 1.5 hours, and interval
// comparisons downstream run on real arithmetic.
func CooldownHours(minutes int) float64 {
	return float64(minutes) / 60.0
}

// ParseDate parses a "2006-01-02" calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, newError(CodeInvalidDate, fmt.Sprintf("%q is not a valid calendar date", s))
	}
	return t, nil
}

// Weekday returns the lowercase weekday name of a "2006-01-02" date, matching
// the keys of a place's weekday hours table.
func Weekday(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return strings.ToLower(t.Weekday().String()), nil
}
