// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"roomly/database"
	"roomly/models"
	"roomly/utils"
)

// ReservationRepository is a read-only view over committed reservations. The
// availability engine only ever consumes a snapshot; creating and cancelling
// reservations belongs to the external booking workflow, which must re-check
// availability against a fresh read inside its own transaction.
type ReservationRepository interface {
	GetByPlaceAndDate(ctx context.Context, placeID, date string) ([]models.Reservation, error)
	GetByPlaceAndDateRange(ctx context.Context, placeID, from, to string) ([]models.Reservation, error)
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database("roomly")
	repo := &mongoReservationRepo{
		coll: db.Collection("reservations"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure reservation indexes", zap.Error(err))
	}
	return repo
}
