// File: database/repository/place/interface.go
package placeRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"roomly/database"
	"roomly/models"
	"roomly/utils"
)

// PlaceRepository supplies per-place booking configuration: weekday operating
// hours, the default window, and the booking policy. Read-only from the
// availability service's point of view.
type PlaceRepository interface {
	GetByID(ctx context.Context, placeID string) (*models.Place, error)
	ListActiveIDs(ctx context.Context) ([]string, error)
}

type mongoPlaceRepo struct {
	coll *mongo.Collection
}

// NewMongoPlaceRepo constructs a new MongoDB PlaceRepository.
func NewMongoPlaceRepo() PlaceRepository {
	db := database.MongoClient.Database("roomly")
	repo := &mongoPlaceRepo{
		coll: db.Collection("places"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure place indexes", zap.Error(err))
	}
	return repo
}
