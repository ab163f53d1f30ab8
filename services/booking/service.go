package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	placeRepo "roomly/database/repository/place"
	reservationRepo "roomly/database/repository/reservation"
	"roomly/models"
	"roomly/services/availability"
	"roomly/utils"
)

// Calendar requests are bounded so a single call cannot fan out over years.
const maxCalendarDays = 92

// DefaultAvailabilityService is the production availability service.
type DefaultAvailabilityService struct {
	PlaceRepo       placeRepo.PlaceRepository
	ReservationRepo reservationRepo.ReservationRepository
	Clock           availability.Clock
	Cache           *redis.Client
	CacheTTL        time.Duration
}

func (s *DefaultAvailabilityService) GetStartTimes(ctx context.Context, placeID, date string) (*StartTimesResult, error) {
	window, policy, err := s.resolveDay(ctx, placeID, date)
	if err != nil {
		return nil, err
	}

	reservations, err := s.ReservationRepo.GetByPlaceAndDate(ctx, placeID, date)
	if err != nil {
		return nil, err
	}

	starts := availability.ValidStartTimes(date, window, reservations, policy)
	now := s.Clock.Now()
	if date <= now.Date {
		starts = availability.FilterPastHours(now, date, starts)
	}

	return &StartTimesResult{
		PlaceID:    placeID,
		Date:       date,
		StartHours: starts,
		StartTimes: formatHours(starts),
	}, nil
}

func (s *DefaultAvailabilityService) GetEndTimes(ctx context.Context, placeID, date string, startHour int) (*EndTimesResult, error) {
	window, policy, err := s.resolveDay(ctx, placeID, date)
	if err != nil {
		return nil, err
	}
	if startHour < window.StartHour || startHour >= window.EndHour {
		return nil, &availability.InputError{
			Code:    availability.CodeInvalidWindow,
			Message: fmt.Sprintf("start hour %d is outside the operating window [%d, %d)", startHour, window.StartHour, window.EndHour),
		}
	}

	reservations, err := s.ReservationRepo.GetByPlaceAndDate(ctx, placeID, date)
	if err != nil {
		return nil, err
	}

	ends := availability.ValidEndTimes(date, startHour, window, reservations, policy)
	return &EndTimesResult{
		PlaceID:   placeID,
		Date:      date,
		StartHour: startHour,
		EndHours:  ends,
		EndTimes:  formatHours(ends),
	}, nil
}

// CheckRange is an advisory probe over the current snapshot. The booking
// workflow that commits a reservation must run the same check again against a
// transactionally consistent read; a snapshot taken here can go stale before
// the commit lands.
func (s *DefaultAvailabilityService) CheckRange(ctx context.Context, placeID, date string, startHour, endHour int) (*RangeCheckResult, error) {
	_, policy, err := s.resolveDay(ctx, placeID, date)
	if err != nil {
		return nil, err
	}

	reservations, err := s.ReservationRepo.GetByPlaceAndDate(ctx, placeID, date)
	if err != nil {
		return nil, err
	}

	cd := availability.CooldownHours(policy.CooldownMinutes)
	return &RangeCheckResult{
		PlaceID:   placeID,
		Date:      date,
		StartHour: startHour,
		EndHour:   endHour,
		Available: availability.IsRangeAvailable(date, startHour, endHour, reservations, cd),
	}, nil
}

func (s *DefaultAvailabilityService) GetDaySummary(ctx context.Context, placeID, date string) (*DaySummary, error) {
	if cached := s.cachedSummary(ctx, placeID, date); cached != nil {
		return cached, nil
	}

	window, policy, err := s.resolveDay(ctx, placeID, date)
	if err != nil {
		return nil, err
	}

	reservations, err := s.ReservationRepo.GetByPlaceAndDate(ctx, placeID, date)
	if err != nil {
		return nil, err
	}

	summary := s.buildDaySummary(date, window, reservations, policy)
	s.storeSummary(ctx, placeID, summary)
	return summary, nil
}

func (s *DefaultAvailabilityService) GetCalendar(ctx context.Context, placeID, from, to string) ([]DaySummary, error) {
	fromDay, err := availability.ParseDate(from)
	if err != nil {
		return nil, err
	}
	toDay, err := availability.ParseDate(to)
	if err != nil {
		return nil, err
	}
	if toDay.Before(fromDay) {
		return nil, &availability.InputError{Code: availability.CodeInvalidDate, Message: "calendar range end precedes start"}
	}
	if int(toDay.Sub(fromDay).Hours()/24) >= maxCalendarDays {
		return nil, &availability.InputError{Code: availability.CodeInvalidDate, Message: fmt.Sprintf("calendar range longer than %d days", maxCalendarDays)}
	}

	place, err := s.PlaceRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	// One range query for the whole span; per-day recomputation only fills
	// cache misses.
	reservations, err := s.ReservationRepo.GetByPlaceAndDateRange(ctx, placeID, from, to)
	if err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	var summaries []DaySummary
	for d := fromDay; !d.After(toDay); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")

		if cached := s.cachedSummary(ctx, placeID, date); cached != nil {
			summaries = append(summaries, *cached)
			continue
		}

		window, policy, err := resolvePlaceDay(place, date)
		if err != nil {
			// A misconfigured weekday poisons single-day queries too; skip
			// the day here so the rest of the calendar still renders.
			logger.Warn("skipping misconfigured calendar day",
				zap.String("placeID", placeID), zap.String("date", date), zap.Error(err))
			continue
		}

		summary := s.buildDaySummary(date, window, reservations, policy)
		s.storeSummary(ctx, placeID, summary)
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *DefaultAvailabilityService) buildDaySummary(date string, window availability.OperatingWindow, reservations []models.Reservation, policy availability.BookingPolicy) *DaySummary {
	var nowPtr *availability.BusinessTime
	now := s.Clock.Now()
	if date <= now.Date {
		nowPtr = &now
	}

	starts := availability.ValidStartTimes(date, window, reservations, policy)
	if nowPtr != nil {
		starts = availability.FilterPastHours(now, date, starts)
	}

	return &DaySummary{
		Date:       date,
		Window:     window,
		Percentage: availability.BookingPercentage(date, window, reservations, policy),
		Unbookable: len(starts) == 0,
		Hours:      availability.HourStatuses(date, window, reservations, policy, nowPtr),
	}
}

// resolveDay loads the place and resolves its operating window and policy for
// the date, failing fast on configuration errors.
func (s *DefaultAvailabilityService) resolveDay(ctx context.Context, placeID, date string) (availability.OperatingWindow, availability.BookingPolicy, error) {
	place, err := s.PlaceRepo.GetByID(ctx, placeID)
	if err != nil {
		return availability.OperatingWindow{}, availability.BookingPolicy{}, err
	}
	return resolvePlaceDay(place, date)
}

// resolvePlaceDay resolves the operating window for the date's weekday,
// falling back to the place's default hours, and validates both the window
// and the policy before any computation runs on them.
func resolvePlaceDay(place *models.Place, date string) (availability.OperatingWindow, availability.BookingPolicy, error) {
	weekday, err := availability.Weekday(date)
	if err != nil {
		return availability.OperatingWindow{}, availability.BookingPolicy{}, err
	}

	hours := place.DefaultHours
	if dayHours, ok := place.WeekdayHours[weekday]; ok {
		hours = dayHours
	}

	window := availability.OperatingWindow{StartHour: hours.Start, EndHour: hours.End}
	if err := availability.ValidateWindow(window); err != nil {
		return availability.OperatingWindow{}, availability.BookingPolicy{}, err
	}

	policy := availability.BookingPolicy{
		MinDurationHours: place.MinDurationHours,
		CooldownMinutes:  place.CooldownMinutes,
	}
	if err := availability.ValidatePolicy(policy); err != nil {
		return availability.OperatingWindow{}, availability.BookingPolicy{}, err
	}
	return window, policy, nil
}

func summaryCacheKey(placeID, date string) string {
	return fmt.Sprintf("avail:%s:%s", placeID, date)
}

func (s *DefaultAvailabilityService) cachedSummary(ctx context.Context, placeID, date string) *DaySummary {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, summaryCacheKey(placeID, date)).Result()
	if err != nil {
		return nil
	}
	var summary DaySummary
	if err := json.Unmarshal([]byte(data), &summary); err != nil {
		return nil
	}
	return &summary
}

func (s *DefaultAvailabilityService) storeSummary(ctx context.Context, placeID string, summary *DaySummary) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, summaryCacheKey(placeID, summary.Date), data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache day summary",
			zap.String("placeID", placeID), zap.String("date", summary.Date), zap.Error(err))
	}
}

func formatHours(hours []int) []string {
	formatted := make([]string, len(hours))
	for i, h := range hours {
		formatted[i] = availability.FormatHour24(h)
	}
	return formatted
}
