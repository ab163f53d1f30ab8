// File: database/repository/place/queries.go
package placeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"roomly/models"
)

// ErrPlaceNotFound is returned when no place matches the requested ID.
var ErrPlaceNotFound = fmt.Errorf("place not found")

func (repo *mongoPlaceRepo) GetByID(ctx context.Context, placeID string) (*models.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": placeID, "active": true}

	var place models.Place
	if err := repo.coll.FindOne(ctx, filter).Decode(&place); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("failed to fetch place: %w", err)
	}
	return &place, nil
}

func (repo *mongoPlaceRepo) ListActiveIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer cursor.Close(ctx)

	var places []models.Place
	if err := cursor.All(ctx, &places); err != nil {
		return nil, fmt.Errorf("error decoding places: %w", err)
	}

	ids := make([]string, 0, len(places))
	for _, p := range places {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
