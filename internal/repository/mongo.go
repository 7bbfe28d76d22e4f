package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection          = "users"
	lawyerProfilesCollection = "lawyer_profiles"
	slotsCollection          = "availability_slots"
	casesCollection          = "cases"

	mongoTimeout = 5 * time.Second
)

// EnsureMongoIndexes creates the unique indexes the Mongo repositories rely on
// for duplicate detection.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{
				Keys: bson.D{{Key: "phone_number", Value: 1}},
				Options: options.Index().SetUnique(true).
					SetPartialFilterExpression(bson.M{"phone_number": bson.M{"$type": "string"}}),
			},
		},
		lawyerProfilesCollection: {
			{Keys: bson.D{{Key: "lawyer_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		slotsCollection: {
			{
				Keys: bson.D{
					{Key: "lawyer_id", Value: 1},
					{Key: "available_date", Value: 1},
					{Key: "start_time", Value: 1},
					{Key: "end_time", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{
				{Key: "lawyer_id", Value: 1},
				{Key: "available_date", Value: 1},
				{Key: "start_minute", Value: 1},
			}},
		},
		casesCollection: {
			{Keys: bson.D{{Key: "slot_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "lawyer_profile_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}

func mongoError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}
