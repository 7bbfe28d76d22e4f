package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"legalease/internal/domain"
	"legalease/internal/repository"
	"legalease/pkg/auth"
	"legalease/pkg/validator"
)

const (
	msgInvalidCredentials = "invalid email or password"
	msgInvalidToken       = "invalid or expired token"
	msgEmailTaken         = "user with this email already exists"
	msgPhoneTaken         = "user with this phone number already exists"
	msgPhoneRequired      = "phone number is required"
	msgUserNotFound       = "user not found"
)

type AuthServiceImpl struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, role domain.UserRole, dto domain.RegisterRequest) (*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.Validation("unknown role %q", role)
	}

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	phone := ""
	if strings.TrimSpace(dto.PhoneNumber) != "" {
		phone = validator.FormatPhone(dto.PhoneNumber)
	}
	if role == domain.UserRoleClient && phone == "" {
		return nil, domain.Validation(msgPhoneRequired)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.Conflict(msgEmailTaken)
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("failed to look up user by email", zap.Error(err))
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if phone != "" {
		if _, err := s.userRepo.GetByPhone(ctx, phone); err == nil {
			return nil, domain.Conflict(msgPhoneTaken)
		} else if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Error("failed to look up user by phone", zap.Error(err))
			return nil, fmt.Errorf("get user by phone: %w", err)
		}
	}

	hash, err := auth.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("register: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           uuid.NewString(),
		FirstName:    validator.FormatName(validator.SanitizeString(dto.FirstName)),
		MiddleName:   validator.FormatName(validator.SanitizeString(dto.MiddleName)),
		LastName:     validator.FormatName(validator.SanitizeString(dto.LastName)),
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.Conflict(msgEmailTaken)
		}
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", zap.String("userId", user.ID), zap.String("role", string(role)))
	return &user, nil
}

// Login authenticates a user of the given role. Every failure, including a
// correct password for an account of the other role, yields the same message.
func (s *AuthServiceImpl) Login(ctx context.Context, role domain.UserRole, dto domain.LoginRequest) (*domain.Token, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(dto.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Unauthenticated(msgInvalidCredentials)
		}
		s.logger.Error("failed to look up user", zap.Error(err))
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if user.Role != role {
		return nil, domain.Unauthenticated(msgInvalidCredentials)
	}

	ok, err := auth.VerifyPassword(dto.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error("failed to verify password", zap.String("userId", user.ID), zap.Error(err))
		return nil, domain.Unauthenticated(msgInvalidCredentials)
	}
	if !ok {
		return nil, domain.Unauthenticated(msgInvalidCredentials)
	}

	token, err := s.tokens.Issue(user.ID, string(user.Role), user.Email)
	if err != nil {
		s.logger.Error("failed to issue token", zap.String("userId", user.ID), zap.Error(err))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &domain.Token{
		AccessToken: token,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		User:        user,
	}, nil
}

func (s *AuthServiceImpl) ParseToken(_ context.Context, token string) (domain.Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.Principal{}, domain.Unauthenticated(msgInvalidToken)
	}

	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		return domain.Principal{}, domain.Unauthenticated(msgInvalidToken)
	}

	return domain.Principal{UserID: claims.UserID, Role: role}, nil
}

func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(msgUserNotFound)
		}
		s.logger.Error("failed to load user", zap.String("userId", userID), zap.Error(err))
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
