package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"legalease/internal/domain"
	"legalease/internal/events"
	"legalease/internal/locker"
	"legalease/internal/repository"
)

func TestProposeSlot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	slot, err := env.services.Availability.ProposeSlot(ctx, "lawyer-1", domain.CreateSlotDTO{
		AvailableDate: "2024-06-01",
		StartTime:     "9:00",
		EndTime:       "10:30",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, slot.ID)
	assert.Equal(t, "lawyer-1", slot.LawyerID)
	assert.Equal(t, "2024-06-01", slot.AvailableDate)
	assert.Equal(t, "9:00", slot.StartTime)
	assert.Equal(t, "10:30", slot.EndTime)
	assert.Equal(t, domain.SlotStatusActive, slot.Status)
	assert.False(t, slot.CreatedAt.IsZero())
	assert.Equal(t, []string{domain.EventSlotCreated}, env.recorder.Types())

	listed, err := env.services.Availability.ListSlots(ctx, "lawyer-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, *slot, listed[0])
}

func TestProposeSlotValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		dto  domain.CreateSlotDTO
		msg  string
	}{
		{name: "missing start", dto: domain.CreateSlotDTO{AvailableDate: "2024-06-01", EndTime: "10:00"}, msg: domain.MsgMissingField},
		{name: "bad minutes", dto: domain.CreateSlotDTO{AvailableDate: "2024-06-01", StartTime: "9:5", EndTime: "10:00"}, msg: domain.MsgBadTimeFormat},
		{name: "hour 25", dto: domain.CreateSlotDTO{AvailableDate: "2024-06-01", StartTime: "09:00", EndTime: "25:00"}, msg: domain.MsgBadTimeFormat},
		{name: "inverted", dto: domain.CreateSlotDTO{AvailableDate: "2024-06-01", StartTime: "11:00", EndTime: "10:00"}, msg: domain.MsgEndBeforeStart},
		{name: "bad date", dto: domain.CreateSlotDTO{AvailableDate: "June 1st", StartTime: "09:00", EndTime: "10:00"}, msg: domain.MsgBadDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.services.Availability.ProposeSlot(context.Background(), "lawyer-1", tt.dto)
			require.Error(t, err)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
			assert.Equal(t, tt.msg, err.Error())
		})
	}

	slots, err := env.services.Availability.ListSlots(context.Background(), "lawyer-1")
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Empty(t, env.recorder.Types())
}

func TestProposeSlotOverlap(t *testing.T) {
	env := newTestEnv(t)
	env.propose(t, "lawyer-1", "2024-06-01", "09:00", "12:00")

	tests := []struct {
		name     string
		lawyerID string
		date     string
		start    string
		end      string
		conflict bool
	}{
		{name: "inside existing", lawyerID: "lawyer-1", date: "2024-06-01", start: "10:00", end: "11:00", conflict: true},
		{name: "overlaps start", lawyerID: "lawyer-1", date: "2024-06-01", start: "08:00", end: "09:30", conflict: true},
		{name: "covers existing", lawyerID: "lawyer-1", date: "2024-06-01", start: "08:00", end: "13:00", conflict: true},
		{name: "identical", lawyerID: "lawyer-1", date: "2024-06-01", start: "09:00", end: "12:00", conflict: true},
		{name: "adjacent after", lawyerID: "lawyer-1", date: "2024-06-01", start: "12:00", end: "13:00"},
		{name: "adjacent before", lawyerID: "lawyer-1", date: "2024-06-01", start: "08:00", end: "09:00"},
		{name: "other date", lawyerID: "lawyer-1", date: "2024-06-02", start: "10:00", end: "11:00"},
		{name: "other lawyer", lawyerID: "lawyer-2", date: "2024-06-01", start: "10:00", end: "11:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.services.Availability.ProposeSlot(context.Background(), tt.lawyerID, domain.CreateSlotDTO{
				AvailableDate: tt.date,
				StartTime:     tt.start,
				EndTime:       tt.end,
			})
			if !tt.conflict {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrConflict))
			assert.Equal(t, domain.MsgSlotOverlaps, err.Error())
		})
	}
}

func TestProposeSlotConcurrentIdenticalRequests(t *testing.T) {
	env := newTestEnv(t)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.services.Availability.ProposeSlot(context.Background(), "lawyer-1", domain.CreateSlotDTO{
				AvailableDate: "2024-06-01",
				StartTime:     "09:00",
				EndTime:       "10:00",
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)

	slots, err := env.services.Availability.ListSlots(context.Background(), "lawyer-1")
	require.NoError(t, err)
	assert.Len(t, slots, 1)
}

// racingSlotRepo simulates a concurrent writer that commits between the
// overlap check and the insert.
type racingSlotRepo struct {
	repository.SlotRepository
	createErr error
}

func (r racingSlotRepo) Create(context.Context, domain.AvailabilitySlot) error {
	return r.createErr
}

func TestProposeSlotStoreSignals(t *testing.T) {
	tests := []struct {
		name      string
		createErr error
		msg       string
	}{
		{name: "duplicate key", createErr: repository.ErrDuplicate, msg: domain.MsgSlotExists},
		{name: "exclusion constraint", createErr: repository.ErrOverlap, msg: domain.MsgSlotOverlaps},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repos := repository.NewMemoryRepositories()
			svc := NewAvailabilityService(
				racingSlotRepo{SlotRepository: repos.Slot, createErr: tt.createErr},
				repos.LawyerProfile,
				locker.NewLocal(),
				events.Nop{},
				zap.NewNop(),
			)

			_, err := svc.ProposeSlot(context.Background(), "lawyer-1", domain.CreateSlotDTO{
				AvailableDate: "2024-06-01",
				StartTime:     "09:00",
				EndTime:       "10:00",
			})
			require.Error(t, err)
			assert.Equal(t, domain.KindConflict, domain.KindOf(err))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestListSlotsOrdering(t *testing.T) {
	env := newTestEnv(t)
	env.propose(t, "lawyer-1", "2024-06-02", "08:00", "09:00")
	env.propose(t, "lawyer-1", "2024-06-01", "14:00", "15:00")
	env.propose(t, "lawyer-1", "2024-06-01", "9:00", "10:00")
	env.propose(t, "lawyer-2", "2024-06-01", "07:00", "08:00")

	slots, err := env.services.Availability.ListSlots(context.Background(), "lawyer-1")
	require.NoError(t, err)
	require.Len(t, slots, 3)

	got := make([]string, 0, len(slots))
	for _, s := range slots {
		got = append(got, s.AvailableDate+" "+s.StartTime)
	}
	assert.Equal(t, []string{"2024-06-01 9:00", "2024-06-01 14:00", "2024-06-02 08:00"}, got)
}

func TestListSlotsForPublicLawyerProfile(t *testing.T) {
	env := newTestEnv(t).withParties(t)
	ctx := context.Background()
	env.propose(t, env.lawyerID, "2024-06-01", "09:00", "10:00")

	slots, err := env.services.Availability.ListSlotsForPublicLawyerProfile(ctx, env.profileID)
	require.NoError(t, err)
	assert.Len(t, slots, 1)

	_, err = env.services.Availability.ListSlotsForPublicLawyerProfile(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// A lawyer account id is not a profile id.
	_, err = env.services.Availability.ListSlotsForPublicLawyerProfile(ctx, env.lawyerID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestDeleteSlot(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	slot := env.propose(t, "lawyer-1", "2024-06-01", "09:00", "10:00")

	err := env.services.Availability.DeleteSlot(ctx, "lawyer-2", slot.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, domain.MsgSlotNotFound, err.Error())

	err = env.services.Availability.DeleteSlot(ctx, "lawyer-1", "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, env.services.Availability.DeleteSlot(ctx, "lawyer-1", slot.ID))

	slots, err := env.services.Availability.ListSlots(ctx, "lawyer-1")
	require.NoError(t, err)
	assert.Empty(t, slots)
	assert.Equal(t, []string{domain.EventSlotCreated, domain.EventSlotDeleted}, env.recorder.Types())

	// The window is free again.
	env.propose(t, "lawyer-1", "2024-06-01", "09:00", "10:00")
}

func TestDeleteBookedSlot(t *testing.T) {
	env := newTestEnv(t).withParties(t)
	ctx := context.Background()
	slot := env.propose(t, env.lawyerID, "2024-06-01", "09:00", "10:00")

	_, err := env.services.Case.Create(ctx, env.clientID, domain.CreateCaseDTO{
		Title:           "Land dispute",
		Description:     "Boundary disagreement with neighbour",
		CaseType:        "civil",
		LawyerProfileID: env.profileID,
		SlotID:          slot.ID,
	}, nil)
	require.NoError(t, err)

	err = env.services.Availability.DeleteSlot(ctx, env.lawyerID, slot.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
	assert.Equal(t, domain.MsgSlotBooked, err.Error())
}
