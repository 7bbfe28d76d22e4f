package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalease/internal/domain"
)

func newSlot(id, lawyerID, date, start, end string) domain.AvailabilitySlot {
	s, _ := domain.ParseClock(start)
	e, _ := domain.ParseClock(end)
	return domain.AvailabilitySlot{
		ID:            id,
		LawyerID:      lawyerID,
		AvailableDate: date,
		StartTime:     start,
		EndTime:       end,
		StartMinute:   s,
		EndMinute:     e,
		Status:        domain.SlotStatusActive,
	}
}

func TestSlotMemoryConstraints(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepositories().Slot

	require.NoError(t, repo.Create(ctx, newSlot("1", "l1", "2024-06-01", "09:00", "12:00")))

	err := repo.Create(ctx, newSlot("2", "l1", "2024-06-01", "09:00", "12:00"))
	assert.ErrorIs(t, err, ErrDuplicate)

	err = repo.Create(ctx, newSlot("3", "l1", "2024-06-01", "11:00", "13:00"))
	assert.ErrorIs(t, err, ErrOverlap)

	assert.NoError(t, repo.Create(ctx, newSlot("4", "l1", "2024-06-01", "12:00", "13:00")))
	assert.NoError(t, repo.Create(ctx, newSlot("5", "l2", "2024-06-01", "09:00", "12:00")))
	assert.NoError(t, repo.Create(ctx, newSlot("6", "l1", "2024-06-02", "09:00", "12:00")))
}

func TestSlotMemoryOrderingAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepositories().Slot

	require.NoError(t, repo.Create(ctx, newSlot("c", "l1", "2024-06-02", "08:00", "09:00")))
	require.NoError(t, repo.Create(ctx, newSlot("b", "l1", "2024-06-01", "14:00", "15:00")))
	require.NoError(t, repo.Create(ctx, newSlot("a", "l1", "2024-06-01", "9:00", "10:00")))

	slots, err := repo.ListByLawyer(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{slots[0].ID, slots[1].ID, slots[2].ID})

	assert.ErrorIs(t, repo.DeleteActive(ctx, "a", "someone-else"), ErrNotFound)

	ok, err := repo.SetStatus(ctx, "b", domain.SlotStatusActive, domain.SlotStatusBooked)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.SetStatus(ctx, "b", domain.SlotStatusActive, domain.SlotStatusBooked)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, repo.DeleteActive(ctx, "b", "l1"), ErrNotFound)

	require.NoError(t, repo.DeleteActive(ctx, "a", "l1"))
	_, err = repo.GetByID(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserMemoryUniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepositories().User

	require.NoError(t, repo.Create(ctx, domain.User{ID: "1", Email: "a@b.com", PhoneNumber: "+251911000000"}))
	assert.ErrorIs(t, repo.Create(ctx, domain.User{ID: "2", Email: "A@B.com"}), ErrDuplicate)
	assert.ErrorIs(t, repo.Create(ctx, domain.User{ID: "3", Email: "c@d.com", PhoneNumber: "+251911000000"}), ErrDuplicate)
	assert.NoError(t, repo.Create(ctx, domain.User{ID: "4", Email: "e@f.com"}))
	assert.NoError(t, repo.Create(ctx, domain.User{ID: "5", Email: "g@h.com"}))

	u, err := repo.GetByEmail(ctx, "A@B.COM")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
}

func TestLawyerProfileMemoryList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepositories().LawyerProfile
	now := time.Now()

	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, repo.Create(ctx, domain.LawyerProfile{
			ID:        id,
			LawyerID:  "lawyer-" + id,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}))
	}
	assert.ErrorIs(t, repo.Create(ctx, domain.LawyerProfile{ID: "dup", LawyerID: "lawyer-old"}), ErrDuplicate)

	page, total, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "new", page[0].ID)
	assert.Equal(t, "mid", page[1].ID)

	page, _, err = repo.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "old", page[0].ID)
}

func TestCaseMemoryStats(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepositories().Case

	require.NoError(t, repo.Create(ctx, domain.Case{ID: "1", ClientID: "c1", LawyerProfileID: "p1", SlotID: "s1"}))
	require.NoError(t, repo.Create(ctx, domain.Case{ID: "2", ClientID: "c1", LawyerProfileID: "p1", SlotID: "s2"}))
	require.NoError(t, repo.Create(ctx, domain.Case{ID: "3", ClientID: "c2", LawyerProfileID: "p1", SlotID: "s3"}))
	assert.ErrorIs(t, repo.Create(ctx, domain.Case{ID: "4", ClientID: "c3", LawyerProfileID: "p1", SlotID: "s3"}), ErrDuplicate)

	stats, err := repo.StatsByLawyerProfile(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.LawyerStats{Cases: 3, Clients: 2}, stats)
}
