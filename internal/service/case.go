package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legalease/internal/domain"
	"legalease/internal/events"
	"legalease/internal/repository"
	"legalease/internal/storage"
	"legalease/pkg/validator"
)

const (
	msgInvalidAppointment = "invalid appointment time"
	msgForeignAppointment = "appointment time does not belong to this lawyer"
	msgBadCaseFile        = "case file must be a base64 encoded pdf, doc, docx or image"
	msgCaseNotFound       = "case not found"
	msgCaseNoDocument     = "case has no document"
	msgCaseForbidden      = "you are not a party to this case"
)

type CaseServiceImpl struct {
	caseRepo      repository.CaseRepository
	slotRepo      repository.SlotRepository
	profileRepo   repository.LawyerProfileRepository
	userRepo      repository.UserRepository
	fileStorage   storage.FileStorage
	publisher     events.Publisher
	presignExpiry time.Duration
	logger        *zap.Logger
}

func NewCaseService(
	caseRepo repository.CaseRepository,
	slotRepo repository.SlotRepository,
	profileRepo repository.LawyerProfileRepository,
	userRepo repository.UserRepository,
	fileStorage storage.FileStorage,
	publisher events.Publisher,
	presignExpiry time.Duration,
	logger *zap.Logger,
) *CaseServiceImpl {
	return &CaseServiceImpl{
		caseRepo:      caseRepo,
		slotRepo:      slotRepo,
		profileRepo:   profileRepo,
		userRepo:      userRepo,
		fileStorage:   fileStorage,
		publisher:     publisher,
		presignExpiry: presignExpiry,
		logger:        logger,
	}
}

// Create opens a case against a lawyer profile and books the chosen slot.
// The slot moves active -> booked with a conditional update, so two clients
// racing for the same slot get exactly one case.
func (s *CaseServiceImpl) Create(ctx context.Context, clientID string, dto domain.CreateCaseDTO, doc *domain.CaseDocument) (*domain.Case, error) {
	if doc == nil && dto.CaseFile != "" {
		data, err := decodeCaseFile(dto.CaseFile)
		if err != nil {
			return nil, domain.Validation(msgBadCaseFile)
		}
		doc = &domain.CaseDocument{Data: data, Filename: dto.CaseFileName}
	}

	profile, err := s.profileRepo.GetByID(ctx, dto.LawyerProfileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(msgProfileNotFound)
		}
		s.logger.Error("failed to load lawyer profile", zap.String("profileId", dto.LawyerProfileID), zap.Error(err))
		return nil, fmt.Errorf("get lawyer profile: %w", err)
	}

	slot, err := s.slotRepo.GetByID(ctx, dto.SlotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Validation(msgInvalidAppointment)
		}
		s.logger.Error("failed to load slot", zap.String("slotId", dto.SlotID), zap.Error(err))
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot.LawyerID != profile.LawyerID {
		return nil, domain.Validation(msgForeignAppointment)
	}

	booked, err := s.slotRepo.SetStatus(ctx, slot.ID, domain.SlotStatusActive, domain.SlotStatusBooked)
	if err != nil {
		s.logger.Error("failed to book slot", zap.String("slotId", slot.ID), zap.Error(err))
		return nil, fmt.Errorf("book slot: %w", err)
	}
	if !booked {
		return nil, domain.Conflict(domain.MsgSlotTaken)
	}

	var fileKey string
	if doc != nil && len(doc.Data) > 0 {
		fileKey, err = s.fileStorage.Upload(ctx, storage.KindCaseDocument, doc.Data, doc.Filename)
		if err != nil {
			s.releaseSlot(ctx, slot.ID)
			if errors.Is(err, storage.ErrEmptyFile) || errors.Is(err, storage.ErrUnsupportedType) {
				return nil, domain.Validation(msgBadCaseFile)
			}
			s.logger.Error("failed to upload case document", zap.Error(err))
			return nil, fmt.Errorf("upload case document: %w", err)
		}
	}

	now := time.Now().UTC()
	c := domain.Case{
		ID:              uuid.NewString(),
		Title:           validator.SanitizeString(dto.Title),
		Description:     strings.TrimSpace(dto.Description),
		CaseType:        validator.SanitizeString(dto.CaseType),
		ClientID:        clientID,
		LawyerProfileID: profile.ID,
		SlotID:          slot.ID,
		CaseFileKey:     fileKey,
		Status:          domain.CaseStatusOpen,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.caseRepo.Create(ctx, c); err != nil {
		if fileKey != "" {
			if delErr := s.fileStorage.Delete(ctx, fileKey); delErr != nil {
				s.logger.Warn("failed to remove orphaned case document", zap.String("key", fileKey), zap.Error(delErr))
			}
		}
		s.releaseSlot(ctx, slot.ID)
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict(domain.MsgSlotTaken)
		}
		s.logger.Error("failed to create case", zap.String("clientId", clientID), zap.Error(err))
		return nil, fmt.Errorf("create case: %w", err)
	}

	publish(ctx, s.publisher, s.logger, events.New(domain.EventCaseCreated, domain.CaseCreatedPayload{
		CaseID:          c.ID,
		ClientID:        c.ClientID,
		LawyerProfileID: c.LawyerProfileID,
		SlotID:          c.SlotID,
		CaseType:        c.CaseType,
	}))

	slot.Status = domain.SlotStatusBooked
	c.AppointmentTime = slot
	c.Lawyer = profile
	c.HasDocument = fileKey != ""
	return &c, nil
}

func (s *CaseServiceImpl) releaseSlot(ctx context.Context, slotID string) {
	if _, err := s.slotRepo.SetStatus(ctx, slotID, domain.SlotStatusBooked, domain.SlotStatusActive); err != nil {
		s.logger.Error("failed to release slot", zap.String("slotId", slotID), zap.Error(err))
	}
}

func (s *CaseServiceImpl) ListForClient(ctx context.Context, clientID string) ([]domain.Case, error) {
	cases, err := s.caseRepo.ListByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("failed to list client cases", zap.String("clientId", clientID), zap.Error(err))
		return nil, fmt.Errorf("list client cases: %w", err)
	}

	for i := range cases {
		cases[i].AppointmentTime = s.lookupSlot(ctx, cases[i].SlotID)
		if profile, err := s.profileRepo.GetByID(ctx, cases[i].LawyerProfileID); err == nil {
			cases[i].Lawyer = profile
		}
	}
	return cases, nil
}

// ListForLawyer returns an empty list for a lawyer who has no profile yet.
func (s *CaseServiceImpl) ListForLawyer(ctx context.Context, lawyerID string) ([]domain.Case, error) {
	profile, err := s.profileRepo.GetByLawyerID(ctx, lawyerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []domain.Case{}, nil
		}
		s.logger.Error("failed to load lawyer profile", zap.String("lawyerId", lawyerID), zap.Error(err))
		return nil, fmt.Errorf("get lawyer profile: %w", err)
	}

	cases, err := s.caseRepo.ListByLawyerProfile(ctx, profile.ID)
	if err != nil {
		s.logger.Error("failed to list lawyer cases", zap.String("profileId", profile.ID), zap.Error(err))
		return nil, fmt.Errorf("list lawyer cases: %w", err)
	}

	for i := range cases {
		cases[i].AppointmentTime = s.lookupSlot(ctx, cases[i].SlotID)
		if client, err := s.userRepo.GetByID(ctx, cases[i].ClientID); err == nil {
			cases[i].Client = client
		}
	}
	return cases, nil
}

func (s *CaseServiceImpl) StatsForLawyer(ctx context.Context, lawyerID string) (domain.LawyerStats, error) {
	profile, err := s.profileRepo.GetByLawyerID(ctx, lawyerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.LawyerStats{}, nil
		}
		s.logger.Error("failed to load lawyer profile", zap.String("lawyerId", lawyerID), zap.Error(err))
		return domain.LawyerStats{}, fmt.Errorf("get lawyer profile: %w", err)
	}

	stats, err := s.caseRepo.StatsByLawyerProfile(ctx, profile.ID)
	if err != nil {
		s.logger.Error("failed to compute lawyer stats", zap.String("profileId", profile.ID), zap.Error(err))
		return domain.LawyerStats{}, fmt.Errorf("lawyer stats: %w", err)
	}
	return stats, nil
}

// DocumentURL returns a short-lived download link for the case document. Only
// the client who opened the case and the lawyer it was opened with may ask.
func (s *CaseServiceImpl) DocumentURL(ctx context.Context, principal domain.Principal, caseID string) (string, error) {
	c, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", domain.NotFound(msgCaseNotFound)
		}
		s.logger.Error("failed to load case", zap.String("caseId", caseID), zap.Error(err))
		return "", fmt.Errorf("get case: %w", err)
	}

	allowed, err := s.isParty(ctx, principal, c)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", domain.Forbidden(msgCaseForbidden)
	}

	if c.CaseFileKey == "" {
		return "", domain.NotFound(msgCaseNoDocument)
	}

	url, err := s.fileStorage.PresignedURL(ctx, c.CaseFileKey, s.presignExpiry)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", domain.NotFound(msgCaseNoDocument)
		}
		s.logger.Error("failed to presign case document", zap.String("caseId", caseID), zap.Error(err))
		return "", fmt.Errorf("presign case document: %w", err)
	}
	return url, nil
}

func (s *CaseServiceImpl) isParty(ctx context.Context, principal domain.Principal, c *domain.Case) (bool, error) {
	switch principal.Role {
	case domain.UserRoleClient:
		return c.ClientID == principal.UserID, nil
	case domain.UserRoleLawyer:
		profile, err := s.profileRepo.GetByLawyerID(ctx, principal.UserID)
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("get lawyer profile: %w", err)
		}
		return profile.ID == c.LawyerProfileID, nil
	}
	return false, nil
}

func (s *CaseServiceImpl) lookupSlot(ctx context.Context, slotID string) *domain.AvailabilitySlot {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to load case slot", zap.String("slotId", slotID), zap.Error(err))
		}
		return nil
	}
	return slot
}

// decodeCaseFile accepts raw base64 or a data URL ("data:application/pdf;base64,...").
func decodeCaseFile(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		_, payload, ok := strings.Cut(s, ",")
		if !ok {
			return nil, errors.New("malformed data url")
		}
		s = payload
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty case file")
	}
	return data, nil
}
