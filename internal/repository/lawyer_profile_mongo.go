package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"legalease/internal/domain"
)

type LawyerProfileMongo struct {
	coll *mongo.Collection
}

func NewLawyerProfileMongo(db *mongo.Database) *LawyerProfileMongo {
	return &LawyerProfileMongo{coll: db.Collection(lawyerProfilesCollection)}
}

func (r *LawyerProfileMongo) Create(ctx context.Context, p domain.LawyerProfile) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("create lawyer profile: %w", mongoError(err))
	}
	return nil
}

func (r *LawyerProfileMongo) GetByID(ctx context.Context, id string) (*domain.LawyerProfile, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *LawyerProfileMongo) GetByLawyerID(ctx context.Context, lawyerID string) (*domain.LawyerProfile, error) {
	return r.findOne(ctx, bson.M{"lawyer_id": lawyerID})
}

func (r *LawyerProfileMongo) List(ctx context.Context, limit, offset int) ([]domain.LawyerProfile, int, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count lawyer profiles: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list lawyer profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []domain.LawyerProfile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, 0, fmt.Errorf("decode lawyer profiles: %w", err)
	}
	return profiles, int(total), nil
}

func (r *LawyerProfileMongo) Update(ctx context.Context, p domain.LawyerProfile) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"full_name":                p.FullName,
		"phone_number":             p.PhoneNumber,
		"license_number":           p.LicenseNumber,
		"years_of_experience":      p.YearsOfExperience,
		"current_working_location": p.CurrentWorkingLocation,
		"min_price_etb":            p.MinPriceETB,
		"updated_at":               p.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return fmt.Errorf("update lawyer profile: %w", mongoError(err))
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LawyerProfileMongo) UpdateImage(ctx context.Context, id, imageURL string) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"profile_image_url": imageURL, "updated_at": time.Now().UTC()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update lawyer profile image: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *LawyerProfileMongo) findOne(ctx context.Context, filter bson.M) (*domain.LawyerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var p domain.LawyerProfile
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if err = mongoError(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get lawyer profile: %w", err)
	}
	return &p, nil
}
