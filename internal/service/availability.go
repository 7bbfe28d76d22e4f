package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legalease/internal/domain"
	"legalease/internal/events"
	"legalease/internal/locker"
	"legalease/internal/repository"
)

type AvailabilityServiceImpl struct {
	slotRepo    repository.SlotRepository
	profileRepo repository.LawyerProfileRepository
	locker      locker.Locker
	publisher   events.Publisher
	logger      *zap.Logger
}

func NewAvailabilityService(
	slotRepo repository.SlotRepository,
	profileRepo repository.LawyerProfileRepository,
	locker locker.Locker,
	publisher events.Publisher,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		slotRepo:    slotRepo,
		profileRepo: profileRepo,
		locker:      locker,
		publisher:   publisher,
		logger:      logger,
	}
}

func slotLockKey(lawyerID, date string) string {
	return fmt.Sprintf("slots:%s:%s", lawyerID, date)
}

// ProposeSlot validates the window and stores it unless it overlaps another
// slot of the same lawyer on the same date. The read and the insert run under
// a lock on (lawyer, date) so concurrent proposals cannot both pass the check.
func (s *AvailabilityServiceImpl) ProposeSlot(ctx context.Context, lawyerID string, dto domain.CreateSlotDTO) (*domain.AvailabilitySlot, error) {
	candidate, err := domain.NewSlotCandidate(lawyerID, dto)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, slotLockKey(lawyerID, candidate.AvailableDate))
	if err != nil {
		s.logger.Error("failed to acquire slot lock", zap.String("lawyerId", lawyerID), zap.Error(err))
		return nil, fmt.Errorf("acquire slot lock: %w", err)
	}
	defer unlock()

	existing, err := s.slotRepo.ListByLawyerAndDate(ctx, lawyerID, candidate.AvailableDate)
	if err != nil {
		s.logger.Error("failed to load slots", zap.String("lawyerId", lawyerID), zap.Error(err))
		return nil, fmt.Errorf("load slots: %w", err)
	}

	if hit, ok := domain.FindOverlap(candidate, existing); ok {
		s.logger.Debug("slot overlaps existing availability",
			zap.String("lawyerId", lawyerID),
			zap.String("date", candidate.AvailableDate),
			zap.String("existingSlotId", hit.ID),
		)
		return nil, domain.Conflict(domain.MsgSlotOverlaps)
	}

	now := time.Now().UTC()
	candidate.ID = uuid.NewString()
	candidate.CreatedAt = now
	candidate.UpdatedAt = now

	if err := s.slotRepo.Create(ctx, candidate); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, domain.Conflict(domain.MsgSlotExists)
		case errors.Is(err, repository.ErrOverlap):
			return nil, domain.Conflict(domain.MsgSlotOverlaps)
		}
		s.logger.Error("failed to create slot", zap.String("lawyerId", lawyerID), zap.Error(err))
		return nil, fmt.Errorf("create slot: %w", err)
	}

	publish(ctx, s.publisher, s.logger, events.New(domain.EventSlotCreated, slotPayload(candidate)))

	return &candidate, nil
}

func (s *AvailabilityServiceImpl) ListSlots(ctx context.Context, lawyerID string) ([]domain.AvailabilitySlot, error) {
	slots, err := s.slotRepo.ListByLawyer(ctx, lawyerID)
	if err != nil {
		s.logger.Error("failed to list slots", zap.String("lawyerId", lawyerID), zap.Error(err))
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

func (s *AvailabilityServiceImpl) ListSlotsForPublicLawyerProfile(ctx context.Context, profileID string) ([]domain.AvailabilitySlot, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(msgProfileNotFound)
		}
		s.logger.Error("failed to load lawyer profile", zap.String("profileId", profileID), zap.Error(err))
		return nil, fmt.Errorf("get lawyer profile: %w", err)
	}

	return s.ListSlots(ctx, profile.LawyerID)
}

// DeleteSlot removes an active slot owned by lawyerID. A slot owned by someone
// else is reported exactly like a missing one.
func (s *AvailabilityServiceImpl) DeleteSlot(ctx context.Context, lawyerID, slotID string) error {
	slot, err := s.ownedSlot(ctx, lawyerID, slotID)
	if err != nil {
		return err
	}
	if slot.Status == domain.SlotStatusBooked {
		return domain.Conflict(domain.MsgSlotBooked)
	}

	if err := s.slotRepo.DeleteActive(ctx, slotID, lawyerID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("failed to delete slot", zap.String("slotId", slotID), zap.Error(err))
			return fmt.Errorf("delete slot: %w", err)
		}
		// Booked or deleted between the read and the delete.
		if current, err := s.ownedSlot(ctx, lawyerID, slotID); err == nil && current.Status == domain.SlotStatusBooked {
			return domain.Conflict(domain.MsgSlotBooked)
		}
		return domain.NotFound(domain.MsgSlotNotFound)
	}

	publish(ctx, s.publisher, s.logger, events.New(domain.EventSlotDeleted, slotPayload(*slot)))

	return nil
}

func (s *AvailabilityServiceImpl) ownedSlot(ctx context.Context, lawyerID, slotID string) (*domain.AvailabilitySlot, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(domain.MsgSlotNotFound)
		}
		s.logger.Error("failed to load slot", zap.String("slotId", slotID), zap.Error(err))
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot.LawyerID != lawyerID {
		return nil, domain.NotFound(domain.MsgSlotNotFound)
	}
	return slot, nil
}

func slotPayload(slot domain.AvailabilitySlot) domain.SlotEventPayload {
	return domain.SlotEventPayload{
		SlotID:        slot.ID,
		LawyerID:      slot.LawyerID,
		AvailableDate: slot.AvailableDate,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
	}
}
