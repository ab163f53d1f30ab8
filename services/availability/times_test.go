package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHour(t *testing.T) {
	h, err := ParseHour("09:00")
	assert.NoError(t, err)
	assert.Equal(t, 9, h)

	h, err = ParseHour("23:00")
	assert.NoError(t, err)
	assert.Equal(t, 23, h)

	h, err = ParseHour("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, h)
}

func TestParseHour_Rejects(t *testing.T) {
	cases := []string{"9:00", "09:30", "24:00", "-1:00", "09", "0900", "ab:00", "09:0", "+9:00", "-9:00", " 9:00"}
	for _, s := range cases {
		_, err := ParseHour(s)
		assert.Error(t, err, "input %q", s)
		assert.Equal(t, CodeInvalidTimeFormat, ErrorCode(err), "input %q", s)
	}
}

func TestFormatHour24(t *testing.T) {
	assert.Equal(t, "09:00", FormatHour24(9))
	assert.Equal(t, "00:00", FormatHour24(0))
	assert.Equal(t, "17:00", FormatHour24(17))
}

func TestFormatHour12(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatHour12(0))
	assert.Equal(t, "9:00 AM", FormatHour12(9))
	assert.Equal(t, "12:00 PM", FormatHour12(12))
	assert.Equal(t, "5:00 PM", FormatHour12(17))
	assert.Equal(t, "11:00 PM", FormatHour12(23))
}

func TestCooldownHours(t *testing.T) {
	assert.Equal(t, 0.0, CooldownHours(0))
	assert.Equal(t, 0.5, CooldownHours(30))
	assert.Equal(t, 1.5, CooldownHours(90))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2026-08-25")
	assert.NoError(t, err)

	_, err = ParseDate("25/08/2026")
	assert.Error(t, err)
	assert.Equal(t, CodeInvalidDate, ErrorCode(err))

	_, err = ParseDate("2026-13-01")
	assert.Error(t, err)
}

func TestWeekday(t *testing.T) {
	day, err := Weekday("2026-08-25")
	assert.NoError(t, err)
	assert.Equal(t, "tuesday", day)

	day, err = Weekday("2026-08-30")
	assert.NoError(t, err)
	assert.Equal(t, "sunday", day)
}

func TestValidatePolicy(t *testing.T) {
	assert.NoError(t, ValidatePolicy(BookingPolicy{MinDurationHours: 1}))
	assert.NoError(t, ValidatePolicy(BookingPolicy{MinDurationHours: 2, CooldownMinutes: 90}))

	err := ValidatePolicy(BookingPolicy{MinDurationHours: 0})
	assert.Equal(t, CodeInvalidPolicy, ErrorCode(err))

	err = ValidatePolicy(BookingPolicy{MinDurationHours: 1, CooldownMinutes: -30})
	assert.Equal(t, CodeInvalidPolicy, ErrorCode(err))
}

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, ValidateWindow(OperatingWindow{StartHour: 9, EndHour: 17}))

	err := ValidateWindow(OperatingWindow{StartHour: 17, EndHour: 9})
	assert.Equal(t, CodeInvalidWindow, ErrorCode(err))

	err = ValidateWindow(OperatingWindow{StartHour: 9, EndHour: 9})
	assert.Equal(t, CodeInvalidWindow, ErrorCode(err))

	err = ValidateWindow(OperatingWindow{StartHour: -1, EndHour: 10})
	assert.Equal(t, CodeInvalidWindow, ErrorCode(err))
}
