package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roomly/models"
)

func TestBookingPercentage_PartialDay(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 1, CooldownMinutes: 30}
	rs := []models.Reservation{reservation(testDate, 10, 12)}

	// Occupied hours are 10 and 11 (booked) plus 12 (inside the [12, 12.5)
	// cooldown): 3 of 8 hours, 37.5 rounded to 38.
	assert.Equal(t, 38, BookingPercentage(testDate, window, rs, policy))
}

func TestBookingPercentage_EmptyAndFull(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 1}

	assert.Equal(t, 0, BookingPercentage(testDate, window, nil, policy))

	rs := []models.Reservation{reservation(testDate, 9, 17)}
	assert.Equal(t, 100, BookingPercentage(testDate, window, rs, policy))
}

func TestBookingPercentage_CountsDeadGaps(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 3}
	rs := []models.Reservation{
		reservation(testDate, 9, 11),
		reservation(testDate, 12, 14),
	}

	// Hour 11 is free but a three hour booking starting there would collide
	// with the 12:00 reservation, so it counts as occupied. Hours 14-16 are
	// genuinely free; that they cannot fit a 3h booking before close is
	// end-of-day arithmetic and must not inflate the percentage.
	assert.Equal(t, 63, BookingPercentage(testDate, window, rs, policy)) // 5/8 = 62.5
}

func TestBookingPercentage_ShortCloseDoesNotInflate(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 12}
	policy := BookingPolicy{MinDurationHours: 2}

	// No reservations at all: hour 11 cannot start a 2h booking, but the day
	// is 0% full.
	assert.Equal(t, 0, BookingPercentage(testDate, window, nil, policy))
}

func TestIsDateCompletelyUnbookable(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 12}
	policy := BookingPolicy{MinDurationHours: 2}

	assert.False(t, IsDateCompletelyUnbookable(testDate, window, nil, policy))

	rs := []models.Reservation{reservation(testDate, 10, 11)}
	// 9-10 and 11-12 remain free, but neither fits two hours.
	assert.True(t, IsDateCompletelyUnbookable(testDate, window, rs, policy))
}

func TestHourStatuses_Precedence(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 1, CooldownMinutes: 30}
	rs := []models.Reservation{reservation(testDate, 10, 12)}

	statuses := HourStatuses(testDate, window, rs, policy, nil)
	byHour := map[int]SlotStatus{}
	for _, hs := range statuses {
		byHour[hs.Hour] = hs.Status
	}

	assert.Len(t, statuses, 9) // hours 9..17 inclusive
	assert.Equal(t, StatusConflicted, byHour[9]) // own cooldown would hit 10:00
	assert.Equal(t, StatusBooked, byHour[10])
	assert.Equal(t, StatusBooked, byHour[11])
	assert.Equal(t, StatusCooldown, byHour[12])
	assert.Equal(t, StatusAvailable, byHour[13])
	assert.Equal(t, StatusAvailable, byHour[16])
	assert.Equal(t, StatusDayEnd, byHour[17])
}

func TestHourStatuses_PastMarking(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 1}
	now := &BusinessTime{Date: testDate, Hour: 14, Minute: 35}

	statuses := HourStatuses(testDate, window, nil, policy, now)
	byHour := map[int]SlotStatus{}
	for _, hs := range statuses {
		byHour[hs.Hour] = hs.Status
	}

	assert.Equal(t, StatusPast, byHour[9])
	assert.Equal(t, StatusPast, byHour[14]) // running hour counts as elapsed
	assert.Equal(t, StatusAvailable, byHour[15])
	assert.Equal(t, StatusDayEnd, byHour[17])
}

func TestHourStatuses_BookedWinsOverPast(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 1}
	rs := []models.Reservation{reservation(testDate, 9, 11)}
	now := &BusinessTime{Date: testDate, Hour: 14, Minute: 0}

	statuses := HourStatuses(testDate, window, rs, policy, now)
	assert.Equal(t, StatusBooked, statuses[0].Status)
	assert.Equal(t, StatusBooked, statuses[1].Status)
	assert.Equal(t, StatusPast, statuses[2].Status)
}
