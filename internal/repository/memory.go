package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"legalease/internal/domain"
)

// memoryStore backs the in-process repositories used by DB_DRIVER=memory and
// by tests. It enforces the same uniqueness rules as the real stores.
type memoryStore struct {
	mu       sync.RWMutex
	users    map[string]domain.User
	profiles map[string]domain.LawyerProfile
	slots    map[string]domain.AvailabilitySlot
	cases    map[string]domain.Case
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[string]domain.User),
		profiles: make(map[string]domain.LawyerProfile),
		slots:    make(map[string]domain.AvailabilitySlot),
		cases:    make(map[string]domain.Case),
	}
}

type UserMemory struct {
	store *memoryStore
}

func (r *UserMemory) Create(_ context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("%w: users_email_key", ErrDuplicate)
		}
		if user.PhoneNumber != "" && u.PhoneNumber == user.PhoneNumber {
			return fmt.Errorf("%w: users_phone_number_key", ErrDuplicate)
		}
	}
	if _, ok := r.store.users[user.ID]; ok {
		return fmt.Errorf("%w: users_pkey", ErrDuplicate)
	}

	r.store.users[user.ID] = user
	return nil
}

func (r *UserMemory) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *UserMemory) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserMemory) GetByPhone(_ context.Context, phone string) (*domain.User, error) {
	return r.find(func(u domain.User) bool { return phone != "" && u.PhoneNumber == phone })
}

func (r *UserMemory) find(match func(domain.User) bool) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

type LawyerProfileMemory struct {
	store *memoryStore
}

func (r *LawyerProfileMemory) Create(_ context.Context, p domain.LawyerProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.profiles {
		if existing.LawyerID == p.LawyerID {
			return fmt.Errorf("%w: lawyer_profiles_lawyer_id_key", ErrDuplicate)
		}
	}

	r.store.profiles[p.ID] = p
	return nil
}

func (r *LawyerProfileMemory) GetByID(_ context.Context, id string) (*domain.LawyerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *LawyerProfileMemory) GetByLawyerID(_ context.Context, lawyerID string) (*domain.LawyerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.profiles {
		if p.LawyerID == lawyerID {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *LawyerProfileMemory) List(_ context.Context, limit, offset int) ([]domain.LawyerProfile, int, error) {
	r.store.mu.RLock()
	all := make([]domain.LawyerProfile, 0, len(r.store.profiles))
	for _, p := range r.store.profiles {
		all = append(all, p)
	}
	r.store.mu.RUnlock()

	slices.SortFunc(all, func(a, b domain.LawyerProfile) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	total := len(all)
	if offset >= total {
		return []domain.LawyerProfile{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

func (r *LawyerProfileMemory) Update(_ context.Context, p domain.LawyerProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.profiles[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.LawyerID = existing.LawyerID
	p.ProfileImageURL = existing.ProfileImageURL
	p.CreatedAt = existing.CreatedAt
	r.store.profiles[p.ID] = p
	return nil
}

func (r *LawyerProfileMemory) UpdateImage(_ context.Context, id, imageURL string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.profiles[id]
	if !ok {
		return ErrNotFound
	}
	p.ProfileImageURL = imageURL
	p.UpdatedAt = time.Now().UTC()
	r.store.profiles[id] = p
	return nil
}

type SlotMemory struct {
	store *memoryStore
}

func (r *SlotMemory) Create(_ context.Context, slot domain.AvailabilitySlot) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.slots {
		if s.LawyerID != slot.LawyerID || s.AvailableDate != slot.AvailableDate {
			continue
		}
		if s.StartTime == slot.StartTime && s.EndTime == slot.EndTime {
			return fmt.Errorf("%w: availability_slots_tuple_key", ErrDuplicate)
		}
		if slot.Interval().Overlaps(s.Interval()) {
			return fmt.Errorf("%w: availability_slots_no_overlap", ErrOverlap)
		}
	}

	r.store.slots[slot.ID] = slot
	return nil
}

func (r *SlotMemory) GetByID(_ context.Context, id string) (*domain.AvailabilitySlot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.slots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *SlotMemory) ListByLawyerAndDate(_ context.Context, lawyerID, date string) ([]domain.AvailabilitySlot, error) {
	return r.list(func(s domain.AvailabilitySlot) bool {
		return s.LawyerID == lawyerID && s.AvailableDate == date
	}), nil
}

func (r *SlotMemory) ListByLawyer(_ context.Context, lawyerID string) ([]domain.AvailabilitySlot, error) {
	return r.list(func(s domain.AvailabilitySlot) bool { return s.LawyerID == lawyerID }), nil
}

func (r *SlotMemory) DeleteActive(_ context.Context, id, lawyerID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.slots[id]
	if !ok || s.LawyerID != lawyerID || s.Status != domain.SlotStatusActive {
		return ErrNotFound
	}
	delete(r.store.slots, id)
	return nil
}

func (r *SlotMemory) SetStatus(_ context.Context, id string, from, to domain.SlotStatus) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.slots[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	s.UpdatedAt = time.Now().UTC()
	r.store.slots[id] = s
	return true, nil
}

func (r *SlotMemory) list(match func(domain.AvailabilitySlot) bool) []domain.AvailabilitySlot {
	r.store.mu.RLock()
	slots := []domain.AvailabilitySlot{}
	for _, s := range r.store.slots {
		if match(s) {
			slots = append(slots, s)
		}
	}
	r.store.mu.RUnlock()

	slices.SortFunc(slots, func(a, b domain.AvailabilitySlot) int {
		if c := cmp.Compare(a.AvailableDate, b.AvailableDate); c != 0 {
			return c
		}
		return cmp.Compare(a.StartMinute, b.StartMinute)
	})
	return slots
}

type CaseMemory struct {
	store *memoryStore
}

func (r *CaseMemory) Create(_ context.Context, c domain.Case) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.cases {
		if existing.SlotID == c.SlotID {
			return fmt.Errorf("%w: cases_slot_id_key", ErrDuplicate)
		}
	}

	c.AppointmentTime, c.Lawyer, c.Client = nil, nil, nil
	r.store.cases[c.ID] = c
	return nil
}

func (r *CaseMemory) GetByID(_ context.Context, id string) (*domain.Case, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	c.HasDocument = c.CaseFileKey != ""
	return &c, nil
}

func (r *CaseMemory) ListByClient(_ context.Context, clientID string) ([]domain.Case, error) {
	return r.list(func(c domain.Case) bool { return c.ClientID == clientID }), nil
}

func (r *CaseMemory) ListByLawyerProfile(_ context.Context, profileID string) ([]domain.Case, error) {
	return r.list(func(c domain.Case) bool { return c.LawyerProfileID == profileID }), nil
}

func (r *CaseMemory) StatsByLawyerProfile(_ context.Context, profileID string) (domain.LawyerStats, error) {
	cases := r.list(func(c domain.Case) bool { return c.LawyerProfileID == profileID })

	clients := make(map[string]struct{})
	for _, c := range cases {
		clients[c.ClientID] = struct{}{}
	}
	return domain.LawyerStats{Cases: len(cases), Clients: len(clients)}, nil
}

func (r *CaseMemory) list(match func(domain.Case) bool) []domain.Case {
	r.store.mu.RLock()
	cases := []domain.Case{}
	for _, c := range r.store.cases {
		if match(c) {
			c.HasDocument = c.CaseFileKey != ""
			cases = append(cases, c)
		}
	}
	r.store.mu.RUnlock()

	slices.SortFunc(cases, func(a, b domain.Case) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return cases
}
