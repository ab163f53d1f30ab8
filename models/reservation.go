package models

import "time"

// Reservation statuses. Only confirmed reservations block availability.
const (
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// Reservation is a committed booking of a place for a stretch of whole hours
// on one date. Reservations are created and cancelled by the external booking
// workflow; this service only ever reads them.
type Reservation struct {
	ID        string    `bson:"id" json:"id"`
	PlaceID   string    `bson:"placeId" json:"placeId"`
	ClientID  string    `bson:"clientId" json:"clientId,omitempty"`
	Date      string    `bson:"date" json:"date"` // "2006-01-02"
	StartHour int       `bson:"startHour" json:"startHour"`
	EndHour   int       `bson:"endHour" json:"endHour"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}
