// Package availability is the pure booking availability and conflict engine.
// Every function is a side-effect-free computation over an immutable snapshot
// of reservations; callers supply the operating window, the booking policy and
// (for past filtering) the current business time.
package availability

// OperatingWindow is the half-open hourly range [StartHour, EndHour) during
// which a place accepts bookings on a given date.
type OperatingWindow struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// BookingPolicy is a place's booking rules: the shortest permitted booking and
// the mandatory idle buffer after every booking.
type BookingPolicy struct {
	MinDurationHours int `json:"minDurationHours"`
	CooldownMinutes  int `json:"cooldownMinutes"`
}

// Candidate is a proposed, not-yet-committed booking under evaluation. It is
// transient and never persisted.
type Candidate struct {
	Date      string
	StartHour int
	EndHour   int
}

// SlotStatus labels a single hour of a day for calendar display. Exactly one
// status applies per hour; see HourStatuses for the precedence order.
type SlotStatus string

const (
	StatusAvailable  SlotStatus = "available"
	StatusBooked     SlotStatus = "booked"
	StatusCooldown   SlotStatus = "cooldown"
	StatusConflicted SlotStatus = "conflicted"
	StatusDayEnd     SlotStatus = "dayEnd"
	StatusPast       SlotStatus = "past"
)

// HourStatus pairs an hour with its computed status.
type HourStatus struct {
	Hour   int        `json:"hour"`
	Status SlotStatus `json:"status"`
}

// ValidatePolicy rejects policies the engine is not defined for. A zero
// cooldown is fine; a minimum duration under one hour is not.
func ValidatePolicy(p BookingPolicy) error {
	if p.MinDurationHours < 1 {
		return newError(CodeInvalidPolicy, "minimum duration must be at least one hour")
	}
	if p.CooldownMinutes < 0 {
		return newError(CodeInvalidPolicy, "cooldown minutes must not be negative")
	}
	return nil
}

// ValidateWindow rejects empty or inverted operating windows.
func ValidateWindow(w OperatingWindow) error {
	if w.EndHour <= w.StartHour {
		return newError(CodeInvalidWindow, "operating window end must be after start")
	}
	if w.StartHour < 0 || w.EndHour > 24 {
		return newError(CodeInvalidWindow, "operating window must lie within 0..24")
	}
	return nil
}
