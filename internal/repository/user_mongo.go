package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"legalease/internal/domain"
)

type UserMongo struct {
	coll *mongo.Collection
}

func NewUserMongo(db *mongo.Database) *UserMongo {
	return &UserMongo{coll: db.Collection(usersCollection)}
}

func (r *UserMongo) Create(ctx context.Context, user domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", mongoError(err))
	}
	return nil
}

func (r *UserMongo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserMongo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	pattern := "^" + regexp.QuoteMeta(email) + "$"
	return r.findOne(ctx, bson.M{"email": bson.M{"$regex": pattern, "$options": "i"}})
}

func (r *UserMongo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"phone_number": phone})
}

func (r *UserMongo) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var user domain.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err = mongoError(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}
