package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"

	"legalease/internal/domain"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
	ErrOverlap   = errors.New("overlapping record")
)

type Repositories struct {
	User          UserRepository
	LawyerProfile LawyerProfileRepository
	Slot          SlotRepository
	Case          CaseRepository
}

func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:          NewUserPostgres(db),
		LawyerProfile: NewLawyerProfilePostgres(db),
		Slot:          NewSlotPostgres(db),
		Case:          NewCasePostgres(db),
	}
}

func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		User:          NewUserMongo(db),
		LawyerProfile: NewLawyerProfileMongo(db),
		Slot:          NewSlotMongo(db),
		Case:          NewCaseMongo(db),
	}
}

func NewMemoryRepositories() *Repositories {
	store := newMemoryStore()
	return &Repositories{
		User:          &UserMemory{store: store},
		LawyerProfile: &LawyerProfileMemory{store: store},
		Slot:          &SlotMemory{store: store},
		Case:          &CaseMemory{store: store},
	}
}

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
}

type LawyerProfileRepository interface {
	Create(ctx context.Context, profile domain.LawyerProfile) error
	GetByID(ctx context.Context, id string) (*domain.LawyerProfile, error)
	GetByLawyerID(ctx context.Context, lawyerID string) (*domain.LawyerProfile, error)
	// List returns profiles newest first together with the total count.
	List(ctx context.Context, limit, offset int) ([]domain.LawyerProfile, int, error)
	Update(ctx context.Context, profile domain.LawyerProfile) error
	UpdateImage(ctx context.Context, id, imageURL string) error
}

// SlotRepository stores availability slots. Create returns ErrDuplicate for
// an identical (lawyer, date, start, end) tuple and ErrOverlap when the store
// itself rejects an overlapping window.
type SlotRepository interface {
	Create(ctx context.Context, slot domain.AvailabilitySlot) error
	GetByID(ctx context.Context, id string) (*domain.AvailabilitySlot, error)
	ListByLawyerAndDate(ctx context.Context, lawyerID, date string) ([]domain.AvailabilitySlot, error)
	// ListByLawyer orders by date, then start minute.
	ListByLawyer(ctx context.Context, lawyerID string) ([]domain.AvailabilitySlot, error)
	// DeleteActive removes an active slot owned by lawyerID. ErrNotFound when
	// nothing matched.
	DeleteActive(ctx context.Context, id, lawyerID string) error
	// SetStatus moves a slot from one status to another and reports whether
	// the row was in the expected state.
	SetStatus(ctx context.Context, id string, from, to domain.SlotStatus) (bool, error)
}

type CaseRepository interface {
	Create(ctx context.Context, c domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	// ListByClient and ListByLawyerProfile return newest first.
	ListByClient(ctx context.Context, clientID string) ([]domain.Case, error)
	ListByLawyerProfile(ctx context.Context, profileID string) ([]domain.Case, error)
	StatsByLawyerProfile(ctx context.Context, profileID string) (domain.LawyerStats, error)
}
