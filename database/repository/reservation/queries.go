// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"roomly/models"
)

func (repo *mongoReservationRepo) GetByPlaceAndDate(ctx context.Context, placeID, date string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"placeId": placeID,
		"date":    date,
		"status":  models.ReservationStatusConfirmed,
	}
	return repo.find(ctx, filter)
}

func (repo *mongoReservationRepo) GetByPlaceAndDateRange(ctx context.Context, placeID, from, to string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Date strings use the "2006-01-02" layout, so lexicographic range
	// filters are chronological.
	filter := bson.M{
		"placeId": placeID,
		"date":    bson.M{"$gte": from, "$lte": to},
		"status":  models.ReservationStatusConfirmed,
	}
	return repo.find(ctx, filter)
}

func (repo *mongoReservationRepo) find(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}
