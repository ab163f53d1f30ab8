package availability

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"roomly/models"
)

func TestValidStartTimes_OpenDay(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 1}

	starts := ValidStartTimes(testDate, window, nil, policy)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16}, starts)
}

func TestValidStartTimes_CooldownBlocksZone(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 1, CooldownMinutes: 30}
	rs := []models.Reservation{reservation(testDate, 10, 12)}

	starts := ValidStartTimes(testDate, window, rs, policy)
	// 12 sits inside the reservation's occupied interval [10, 12.5); 9 would
	// bleed its own cooldown into the booking; 16 cannot finish plus cool
	// down before close.
	assert.Equal(t, []int{13, 14, 15}, starts)
	assert.NotContains(t, starts, 12)
	assert.Contains(t, starts, 13)
}

func TestValidStartTimes_MinimumDurationBoundary(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 2}

	starts := ValidStartTimes(testDate, window, nil, policy)
	assert.Contains(t, starts, 15) // 15+2 = 17 fits exactly
	assert.NotContains(t, starts, 16)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15}, starts)
}

func TestValidStartTimes_FullyBookedIsEmptyNotError(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 12}
	policy := BookingPolicy{MinDurationHours: 1}
	rs := []models.Reservation{reservation(testDate, 9, 12)}

	starts := ValidStartTimes(testDate, window, rs, policy)
	assert.Empty(t, starts)
}

func TestValidEndTimes_StopsBeforeNextBooking(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	rs := []models.Reservation{reservation(testDate, 13, 14)}

	ends := ValidEndTimes(testDate, 9, window, rs, BookingPolicy{MinDurationHours: 1})
	assert.Equal(t, []int{10, 11, 12, 13}, ends)

	ends = ValidEndTimes(testDate, 9, window, rs, BookingPolicy{MinDurationHours: 1, CooldownMinutes: 30})
	// Ending at 13 would push the cooldown into the 13:00 booking.
	assert.Equal(t, []int{10, 11, 12}, ends)
}

func TestValidEndTimes_ReachesWindowEnd(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	ends := ValidEndTimes(testDate, 15, window, nil, BookingPolicy{MinDurationHours: 2})
	assert.Equal(t, []int{17}, ends)
}

func TestValidEndTimes_RespectsMinimumDuration(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	ends := ValidEndTimes(testDate, 9, window, nil, BookingPolicy{MinDurationHours: 3})
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17}, ends)
}

// randomScenario builds an arbitrary but plausible day: a window somewhere in
// 0..24, up to four non-overlapping reservations, and a small policy.
func randomScenario(rng *rand.Rand) (OperatingWindow, []models.Reservation, BookingPolicy) {
	start := rng.Intn(12)
	end := start + 4 + rng.Intn(12)
	if end > 24 {
		end = 24
	}
	window := OperatingWindow{StartHour: start, EndHour: end}
	policy := BookingPolicy{
		MinDurationHours: 1 + rng.Intn(3),
		CooldownMinutes:  []int{0, 30, 60, 90}[rng.Intn(4)],
	}

	var rs []models.Reservation
	h := start
	for len(rs) < 4 && h < end-1 {
		if rng.Intn(3) == 0 {
			length := 1 + rng.Intn(3)
			if h+length > end {
				length = end - h
			}
			rs = append(rs, reservation(testDate, h, h+length))
			h += length + 1
			continue
		}
		h++
	}
	return window, rs, policy
}

func TestThreeWayConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		window, rs, policy := randomScenario(rng)
		cd := CooldownHours(policy.CooldownMinutes)

		for _, s := range ValidStartTimes(testDate, window, rs, policy) {
			ends := ValidEndTimes(testDate, s, window, rs, policy)
			assert.NotEmpty(t, ends, "start %d window %+v policy %+v rs %+v", s, window, policy, rs)
			for _, e := range ends {
				assert.GreaterOrEqual(t, e-s, policy.MinDurationHours)
				assert.True(t, IsRangeAvailable(testDate, s, e, rs, cd),
					"range %d-%d window %+v policy %+v rs %+v", s, e, window, policy, rs)
			}
		}
	}
}

func TestMonotonicity_AddingReservationOnlyShrinks(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		window, rs, policy := randomScenario(rng)

		extraStart := window.StartHour + rng.Intn(window.EndHour-window.StartHour)
		extra := reservation(testDate, extraStart, extraStart+1)
		grown := append(append([]models.Reservation{}, rs...), extra)

		before := ValidStartTimes(testDate, window, rs, policy)
		after := ValidStartTimes(testDate, window, grown, policy)
		assert.LessOrEqual(t, len(after), len(before))
		for _, h := range after {
			assert.Contains(t, before, h)
		}

		assert.GreaterOrEqual(t,
			BookingPercentage(testDate, window, grown, policy),
			BookingPercentage(testDate, window, rs, policy))
	}
}

func TestIdempotence(t *testing.T) {
	window := OperatingWindow{StartHour: 9, EndHour: 17}
	policy := BookingPolicy{MinDurationHours: 1, CooldownMinutes: 30}
	rs := []models.Reservation{reservation(testDate, 10, 12)}

	assert.Equal(t,
		ValidStartTimes(testDate, window, rs, policy),
		ValidStartTimes(testDate, window, rs, policy))
	assert.Equal(t,
		ValidEndTimes(testDate, 13, window, rs, policy),
		ValidEndTimes(testDate, 13, window, rs, policy))
	assert.Equal(t,
		BookingPercentage(testDate, window, rs, policy),
		BookingPercentage(testDate, window, rs, policy))
}
