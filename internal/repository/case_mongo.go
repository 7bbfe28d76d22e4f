package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"legalease/internal/domain"
)

type CaseMongo struct {
	coll *mongo.Collection
}

func NewCaseMongo(db *mongo.Database) *CaseMongo {
	return &CaseMongo{coll: db.Collection(casesCollection)}
}

func (r *CaseMongo) Create(ctx context.Context, c domain.Case) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("create case: %w", mongoError(err))
	}
	return nil
}

func (r *CaseMongo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var c domain.Case
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err = mongoError(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get case: %w", err)
	}
	c.HasDocument = c.CaseFileKey != ""
	return &c, nil
}

func (r *CaseMongo) ListByClient(ctx context.Context, clientID string) ([]domain.Case, error) {
	return r.find(ctx, bson.M{"client_id": clientID})
}

func (r *CaseMongo) ListByLawyerProfile(ctx context.Context, profileID string) ([]domain.Case, error) {
	return r.find(ctx, bson.M{"lawyer_profile_id": profileID})
}

func (r *CaseMongo) StatsByLawyerProfile(ctx context.Context, profileID string) (domain.LawyerStats, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	filter := bson.M{"lawyer_profile_id": profileID}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return domain.LawyerStats{}, fmt.Errorf("count cases: %w", err)
	}

	clients, err := r.coll.Distinct(ctx, "client_id", filter)
	if err != nil {
		return domain.LawyerStats{}, fmt.Errorf("distinct case clients: %w", err)
	}

	return domain.LawyerStats{Cases: int(count), Clients: len(clients)}, nil
}

func (r *CaseMongo) find(ctx context.Context, filter bson.M) ([]domain.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer cursor.Close(ctx)

	cases := []domain.Case{}
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, fmt.Errorf("decode cases: %w", err)
	}
	for i := range cases {
		cases[i].HasDocument = cases[i].CaseFileKey != ""
	}
	return cases, nil
}
