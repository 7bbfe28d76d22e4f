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

type SlotMongo struct {
	coll *mongo.Collection
}

func NewSlotMongo(db *mongo.Database) *SlotMongo {
	return &SlotMongo{coll: db.Collection(slotsCollection)}
}

func (r *SlotMongo) Create(ctx context.Context, slot domain.AvailabilitySlot) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("create slot: %w", mongoError(err))
	}
	return nil
}

func (r *SlotMongo) GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	var slot domain.AvailabilitySlot
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&slot); err != nil {
		if err = mongoError(err); errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return &slot, nil
}

func (r *SlotMongo) ListByLawyerAndDate(ctx context.Context, lawyerID, date string) ([]domain.AvailabilitySlot, error) {
	return r.find(ctx,
		bson.M{"lawyer_id": lawyerID, "available_date": date},
		bson.D{{Key: "start_minute", Value: 1}},
	)
}

func (r *SlotMongo) ListByLawyer(ctx context.Context, lawyerID string) ([]domain.AvailabilitySlot, error) {
	return r.find(ctx,
		bson.M{"lawyer_id": lawyerID},
		bson.D{{Key: "available_date", Value: 1}, {Key: "start_minute", Value: 1}},
	)
}

func (r *SlotMongo) DeleteActive(ctx context.Context, id, lawyerID string) error {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "lawyer_id": lawyerID, "status": domain.SlotStatusActive}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SlotMongo) SetStatus(ctx context.Context, id string, from, to domain.SlotStatus) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return false, fmt.Errorf("set slot status: %w", err)
	}
	return res.ModifiedCount == 1, nil
}

func (r *SlotMongo) find(ctx context.Context, filter bson.M, sort bson.D) ([]domain.AvailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer cursor.Close(ctx)

	slots := []domain.AvailabilitySlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("decode slots: %w", err)
	}
	return slots, nil
}
