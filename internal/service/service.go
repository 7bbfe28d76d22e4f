package service

import (
	"context"

	"go.uber.org/zap"

	"legalease/config"
	"legalease/internal/domain"
	"legalease/internal/events"
	"legalease/internal/locker"
	"legalease/internal/repository"
	"legalease/internal/storage"
	"legalease/pkg/auth"
)

type Deps struct {
	Repos       *repository.Repositories
	Logger      *zap.Logger
	Config      *config.Config
	FileStorage storage.FileStorage
	Locker      locker.Locker
	Publisher   events.Publisher
	Tokens      *auth.TokenManager
}

type Services struct {
	Auth         AuthService
	Profile      ProfileService
	Availability AvailabilityService
	Case         CaseService
}

func NewServices(deps Deps) *Services {
	return &Services{
		Auth:         NewAuthService(deps.Repos.User, deps.Tokens, deps.Logger),
		Profile:      NewProfileService(deps.Repos.LawyerProfile, deps.FileStorage, deps.Logger),
		Availability: NewAvailabilityService(deps.Repos.Slot, deps.Repos.LawyerProfile, deps.Locker, deps.Publisher, deps.Logger),
		Case: NewCaseService(
			deps.Repos.Case,
			deps.Repos.Slot,
			deps.Repos.LawyerProfile,
			deps.Repos.User,
			deps.FileStorage,
			deps.Publisher,
			deps.Config.S3.PresignExpiry,
			deps.Logger,
		),
	}
}

type AuthService interface {
	Register(ctx context.Context, role domain.UserRole, dto domain.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, role domain.UserRole, dto domain.LoginRequest) (*domain.Token, error)
	ParseToken(ctx context.Context, token string) (domain.Principal, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
}

type ProfileService interface {
	Create(ctx context.Context, lawyerID string, dto domain.CreateLawyerProfileDTO) (*domain.LawyerProfile, error)
	GetByLawyerID(ctx context.Context, lawyerID string) (*domain.LawyerProfile, error)
	GetByID(ctx context.Context, id string) (*domain.LawyerProfile, error)
	List(ctx context.Context, limit, offset int) ([]domain.LawyerProfile, int, error)
	Update(ctx context.Context, lawyerID string, dto domain.UpdateLawyerProfileDTO) (*domain.LawyerProfile, error)
	UploadImage(ctx context.Context, lawyerID string, data []byte, filename string) (*domain.LawyerProfile, error)
}

type AvailabilityService interface {
	ProposeSlot(ctx context.Context, lawyerID string, dto domain.CreateSlotDTO) (*domain.AvailabilitySlot, error)
	ListSlots(ctx context.Context, lawyerID string) ([]domain.AvailabilitySlot, error)
	ListSlotsForPublicLawyerProfile(ctx context.Context, profileID string) ([]domain.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, lawyerID, slotID string) error
}

type CaseService interface {
	Create(ctx context.Context, clientID string, dto domain.CreateCaseDTO, doc *domain.CaseDocument) (*domain.Case, error)
	ListForClient(ctx context.Context, clientID string) ([]domain.Case, error)
	ListForLawyer(ctx context.Context, lawyerID string) ([]domain.Case, error)
	StatsForLawyer(ctx context.Context, lawyerID string) (domain.LawyerStats, error)
	DocumentURL(ctx context.Context, principal domain.Principal, caseID string) (string, error)
}

// publish sends an event without failing the caller: the write it describes
// has already been committed.
func publish(ctx context.Context, p events.Publisher, logger *zap.Logger, event domain.Event) {
	if err := p.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish event",
			zap.String("type", event.EventType),
			zap.String("id", event.ID),
			zap.Error(err),
		)
	}
}
