package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legalease/config"
	"legalease/internal/domain"
	"legalease/internal/events"
	"legalease/internal/locker"
	"legalease/internal/repository"
	"legalease/internal/storage"
	"legalease/pkg/auth"
)

type testEnv struct {
	repos     *repository.Repositories
	services  *Services
	recorder  *events.Recorder
	storage   *storage.Memory
	lawyerID  string
	profileID string
	clientID  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repos := repository.NewMemoryRepositories()
	recorder := &events.Recorder{}
	files := storage.NewMemory("http://files.test")

	services := NewServices(Deps{
		Repos:       repos,
		Logger:      zap.NewNop(),
		Config:      &config.Config{S3: config.S3Config{PresignExpiry: 15 * time.Minute}},
		FileStorage: files,
		Locker:      locker.NewLocal(),
		Publisher:   recorder,
		Tokens:      auth.NewTokenManager("test-key", time.Hour),
	})

	return &testEnv{
		repos:    repos,
		services: services,
		recorder: recorder,
		storage:  files,
	}
}

// withParties registers a lawyer with a profile and a client.
func (e *testEnv) withParties(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	lawyer, err := e.services.Auth.Register(ctx, domain.UserRoleLawyer, domain.RegisterRequest{
		FirstName:  "Abebe",
		MiddleName: "Kebede",
		LastName:   "Tesfaye",
		Email:      "abebe@example.com",
		Password:   "secret1",
	})
	require.NoError(t, err)

	profile, err := e.services.Profile.Create(ctx, lawyer.ID, domain.CreateLawyerProfileDTO{
		FullName:               "Abebe Kebede",
		PhoneNumber:            "0911223344",
		LicenseNumber:          "LIC-001",
		YearsOfExperience:      7,
		CurrentWorkingLocation: "Addis Ababa",
		MinPriceETB:            1500,
	})
	require.NoError(t, err)

	client, err := e.services.Auth.Register(ctx, domain.UserRoleClient, domain.RegisterRequest{
		FirstName:   "Sara",
		MiddleName:  "Alemu",
		LastName:    "Bekele",
		Email:       "sara@example.com",
		PhoneNumber: "0922334455",
		Password:    "secret1",
	})
	require.NoError(t, err)

	e.lawyerID = lawyer.ID
	e.profileID = profile.ID
	e.clientID = client.ID
	return e
}

func (e *testEnv) propose(t *testing.T, lawyerID, date, start, end string) *domain.AvailabilitySlot {
	t.Helper()
	slot, err := e.services.Availability.ProposeSlot(context.Background(), lawyerID, domain.CreateSlotDTO{
		AvailableDate: date,
		StartTime:     start,
		EndTime:       end,
	})
	require.NoError(t, err)
	return slot
}
