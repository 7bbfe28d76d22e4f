package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legalease/internal/domain"
	"legalease/internal/repository"
	"legalease/internal/storage"
	"legalease/pkg/validator"
)

const (
	msgProfileNotFound = "lawyer profile not found"
	msgProfileExists   = "lawyer profile already exists"
)

type ProfileServiceImpl struct {
	profileRepo repository.LawyerProfileRepository
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewProfileService(profileRepo repository.LawyerProfileRepository, fileStorage storage.FileStorage, logger *zap.Logger) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *ProfileServiceImpl) Create(ctx context.Context, lawyerID string, dto domain.CreateLawyerProfileDTO) (*domain.LawyerProfile, error) {
	if _, err := s.profileRepo.GetByLawyerID(ctx, lawyerID); err == nil {
		return nil, domain.Conflict(msgProfileExists)
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("failed to look up lawyer profile", zap.String("lawyerId", lawyerID), zap.Error(err))
		return nil, fmt.Errorf("get lawyer profile: %w", err)
	}

	now := time.Now().UTC()
	profile := domain.LawyerProfile{
		ID:                     uuid.NewString(),
		LawyerID:               lawyerID,
		FullName:               validator.SanitizeString(dto.FullName),
		PhoneNumber:            validator.FormatPhone(dto.PhoneNumber),
		LicenseNumber:          validator.SanitizeString(dto.LicenseNumber),
		YearsOfExperience:      dto.YearsOfExperience,
		CurrentWorkingLocation: validator.SanitizeString(dto.CurrentWorkingLocation),
		MinPriceETB:            dto.MinPriceETB,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict(msgProfileExists)
		}
		s.logger.Error("failed to create lawyer profile", zap.String("lawyerId", lawyerID), zap.Error(err))
		return nil, fmt.Errorf("create lawyer profile: %w", err)
	}

	return &profile, nil
}

func (s *ProfileServiceImpl) GetByLawyerID(ctx context.Context, lawyerID string) (*domain.LawyerProfile, error) {
	profile, err := s.profileRepo.GetByLawyerID(ctx, lawyerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(msgProfileNotFound)
		}
		s.logger.Error("failed to load lawyer profile", zap.String("lawyerId", lawyerID), zap.Error(err))
		return nil, fmt.Errorf("get lawyer profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetByID(ctx context.Context, id string) (*domain.LawyerProfile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(msgProfileNotFound)
		}
		s.logger.Error("failed to load lawyer profile", zap.String("profileId", id), zap.Error(err))
		return nil, fmt.Errorf("get lawyer profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.LawyerProfile, int, error) {
	profiles, total, err := s.profileRepo.List(ctx, limit, offset)
	if err != nil {
		s.logger.Error("failed to list lawyer profiles", zap.Error(err))
		return nil, 0, fmt.Errorf("list lawyer profiles: %w", err)
	}
	return profiles, total, nil
}

func (s *ProfileServiceImpl) Update(ctx context.Context, lawyerID string, dto domain.UpdateLawyerProfileDTO) (*domain.LawyerProfile, error) {
	profile, err := s.GetByLawyerID(ctx, lawyerID)
	if err != nil {
		return nil, err
	}

	dto.Apply(profile)
	profile.PhoneNumber = validator.FormatPhone(profile.PhoneNumber)
	profile.UpdatedAt = time.Now().UTC()

	if err := s.profileRepo.Update(ctx, *profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(msgProfileNotFound)
		}
		s.logger.Error("failed to update lawyer profile", zap.String("profileId", profile.ID), zap.Error(err))
		return nil, fmt.Errorf("update lawyer profile: %w", err)
	}

	return profile, nil
}

func (s *ProfileServiceImpl) UploadImage(ctx context.Context, lawyerID string, data []byte, filename string) (*domain.LawyerProfile, error) {
	profile, err := s.GetByLawyerID(ctx, lawyerID)
	if err != nil {
		return nil, err
	}

	key, err := s.fileStorage.Upload(ctx, storage.KindProfileImage, data, filename)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyFile) || errors.Is(err, storage.ErrUnsupportedType) {
			return nil, domain.Validation("profile image must be a jpeg, png, gif or webp file")
		}
		s.logger.Error("failed to upload profile image", zap.String("profileId", profile.ID), zap.Error(err))
		return nil, fmt.Errorf("upload profile image: %w", err)
	}

	url := s.fileStorage.PublicURL(key)
	if err := s.profileRepo.UpdateImage(ctx, profile.ID, url); err != nil {
		_ = s.fileStorage.Delete(ctx, key)
		s.logger.Error("failed to save profile image", zap.String("profileId", profile.ID), zap.Error(err))
		return nil, fmt.Errorf("update profile image: %w", err)
	}

	profile.ProfileImageURL = url
	return profile, nil
}
