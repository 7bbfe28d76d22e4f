package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "00:00", want: 0, wantOK: true},
		{in: "09:00", want: 540, wantOK: true},
		{in: "9:05", want: 545, wantOK: true},
		{in: "23:59", want: 1439, wantOK: true},
		{in: "9:5", wantOK: false},
		{in: "25:00", wantOK: false},
		{in: "24:00", wantOK: false},
		{in: "12:60", wantOK: false},
		{in: "1200", wantOK: false},
		{in: "", wantOK: false},
		{in: " 09:00", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseClock(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	existing := Interval{Start: 9 * 60, End: 12 * 60}

	tests := []struct {
		name      string
		candidate Interval
		want      bool
	}{
		{name: "fully contained", candidate: Interval{Start: 10 * 60, End: 11 * 60}, want: true},
		{name: "overlaps start", candidate: Interval{Start: 8 * 60, End: 9*60 + 30}, want: true},
		{name: "overlaps end", candidate: Interval{Start: 11*60 + 30, End: 13 * 60}, want: true},
		{name: "covers existing", candidate: Interval{Start: 8 * 60, End: 13 * 60}, want: true},
		{name: "identical", candidate: existing, want: true},
		{name: "adjacent after", candidate: Interval{Start: 12 * 60, End: 13 * 60}, want: false},
		{name: "adjacent before", candidate: Interval{Start: 8 * 60, End: 9 * 60}, want: false},
		{name: "disjoint", candidate: Interval{Start: 14 * 60, End: 15 * 60}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.Overlaps(existing))
		})
	}
}

func TestNewSlotCandidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		slot, err := NewSlotCandidate("lawyer-1", CreateSlotDTO{
			AvailableDate: "2024-06-01",
			StartTime:     "09:00",
			EndTime:       "10:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "lawyer-1", slot.LawyerID)
		assert.Equal(t, "2024-06-01", slot.AvailableDate)
		assert.Equal(t, "09:00", slot.StartTime)
		assert.Equal(t, "10:00", slot.EndTime)
		assert.Equal(t, 540, slot.StartMinute)
		assert.Equal(t, 600, slot.EndMinute)
		assert.Equal(t, SlotStatusActive, slot.Status)
	})

	t.Run("rfc3339 date keeps its own calendar day", func(t *testing.T) {
		slot, err := NewSlotCandidate("lawyer-1", CreateSlotDTO{
			AvailableDate: "2024-06-01T23:30:00-05:00",
			StartTime:     "09:00",
			EndTime:       "10:00",
		})
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01", slot.AvailableDate)
	})

	failures := []struct {
		name string
		dto  CreateSlotDTO
		msg  string
	}{
		{name: "missing date", dto: CreateSlotDTO{StartTime: "09:00", EndTime: "10:00"}, msg: MsgMissingField},
		{name: "missing start", dto: CreateSlotDTO{AvailableDate: "2024-06-01", EndTime: "10:00"}, msg: MsgMissingField},
		{name: "missing end", dto: CreateSlotDTO{AvailableDate: "2024-06-01", StartTime: "09:00"}, msg: MsgMissingField},
		{name: "short minutes", dto: CreateSlotDTO{AvailableDate: "2024-06-01", StartTime: "9:5", EndTime: "10:00"}, msg: MsgBadTimeFormat},
		{name: "hour out of range", dto: CreateSlotDTO{AvailableDate: "2024-06-01", StartTime: "09:00", EndTime: "25:00"}, msg: MsgBadTimeFormat},
		{name: "end equals start", dto: CreateSlotDTO{AvailableDate: "2024-06-01", StartTime: "10:00", EndTime: "10:00"}, msg: MsgEndBeforeStart},
		{name: "end before start", dto: CreateSlotDTO{AvailableDate: "2024-06-01", StartTime: "11:00", EndTime: "10:00"}, msg: MsgEndBeforeStart},
		{name: "bad date", dto: CreateSlotDTO{AvailableDate: "01/06/2024", StartTime: "09:00", EndTime: "10:00"}, msg: MsgBadDateFormat},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSlotCandidate("lawyer-1", tt.dto)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestFindOverlap(t *testing.T) {
	existing := []AvailabilitySlot{
		{ID: "a", StartMinute: 9 * 60, EndMinute: 12 * 60},
		{ID: "b", StartMinute: 14 * 60, EndMinute: 15 * 60},
	}

	hit, ok := FindOverlap(AvailabilitySlot{StartMinute: 14*60 + 30, EndMinute: 16 * 60}, existing)
	require.True(t, ok)
	assert.Equal(t, "b", hit.ID)

	_, ok = FindOverlap(AvailabilitySlot{StartMinute: 12 * 60, EndMinute: 14 * 60}, existing)
	assert.False(t, ok)
}

func TestErrorKinds(t *testing.T) {
	err := Conflict(MsgSlotOverlaps)

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
}
