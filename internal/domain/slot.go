package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var clockRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Slot messages are part of the HTTP contract.
const (
	MsgMissingField   = "missing field"
	MsgBadTimeFormat  = "bad time format"
	MsgBadDateFormat  = "bad date format"
	MsgEndBeforeStart = "end before start"
	MsgSlotOverlaps   = "time slot overlaps with existing availability"
	MsgSlotExists     = "slot already exists"
	MsgSlotNotFound   = "availability slot not found"
	MsgSlotBooked     = "slot is booked by a case"
	MsgSlotTaken      = "slot already booked"
)

type SlotStatus string

const (
	SlotStatusActive SlotStatus = "active"
	SlotStatusBooked SlotStatus = "booked"
)

type AvailabilitySlot struct {
	ID            string     `json:"id" bson:"_id"`
	LawyerID      string     `json:"lawyerId" bson:"lawyer_id"`
	AvailableDate string     `json:"availableDate" bson:"available_date"`
	StartTime     string     `json:"startTime" bson:"start_time"`
	EndTime       string     `json:"endTime" bson:"end_time"`
	StartMinute   int        `json:"-" bson:"start_minute"`
	EndMinute     int        `json:"-" bson:"end_minute"`
	Status        SlotStatus `json:"status" bson:"status"`
	CreatedAt     time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updated_at"`
}

func (s AvailabilitySlot) Interval() Interval {
	return Interval{Start: s.StartMinute, End: s.EndMinute}
}

type CreateSlotDTO struct {
	AvailableDate string `json:"availableDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

// Interval is a half-open [Start, End) range of minutes since midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports whether the candidate i collides with existing.
// A slot that ends exactly where another starts does not overlap it.
func (i Interval) Overlaps(existing Interval) bool {
	startsInside := i.Start >= existing.Start && i.Start < existing.End
	endsInside := i.End > existing.Start && i.End <= existing.End
	covers := i.Start <= existing.Start && i.End >= existing.End
	return startsInside || endsInside || covers
}

// ParseClock converts an HH:MM (24h, hour may be a single digit) string into
// minutes since midnight.
func ParseClock(s string) (int, bool) {
	if !clockRegex.MatchString(s) {
		return 0, false
	}
	hh, mm, _ := strings.Cut(s, ":")
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

func IsClock(s string) bool {
	return clockRegex.MatchString(s)
}

// ParseCalendarDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar date it names. No timezone conversion is applied: "2024-06-01T23:30:00-05:00"
// is 2024-06-01.
func ParseCalendarDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d.Format(DateLayout), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(DateLayout), true
	}
	return "", false
}

// NewSlotCandidate validates the raw request fields in the documented order and
// returns an unsaved slot. Overlap checks are the caller's job.
func NewSlotCandidate(lawyerID string, dto CreateSlotDTO) (AvailabilitySlot, error) {
	if strings.TrimSpace(dto.AvailableDate) == "" || dto.StartTime == "" || dto.EndTime == "" {
		return AvailabilitySlot{}, Validation(MsgMissingField)
	}

	start, ok := ParseClock(dto.StartTime)
	if !ok {
		return AvailabilitySlot{}, Validation(MsgBadTimeFormat)
	}
	end, ok := ParseClock(dto.EndTime)
	if !ok {
		return AvailabilitySlot{}, Validation(MsgBadTimeFormat)
	}

	if end <= start {
		return AvailabilitySlot{}, Validation(MsgEndBeforeStart)
	}

	date, ok := ParseCalendarDate(dto.AvailableDate)
	if !ok {
		return AvailabilitySlot{}, Validation(MsgBadDateFormat)
	}

	return AvailabilitySlot{
		LawyerID:      lawyerID,
		AvailableDate: date,
		StartTime:     dto.StartTime,
		EndTime:       dto.EndTime,
		StartMinute:   start,
		EndMinute:     end,
		Status:        SlotStatusActive,
	}, nil
}

// FindOverlap returns the first existing slot the candidate collides with.
func FindOverlap(candidate AvailabilitySlot, existing []AvailabilitySlot) (AvailabilitySlot, bool) {
	c := candidate.Interval()
	for _, e := range existing {
		if c.Overlaps(e.Interval()) {
			return e, true
		}
	}
	return AvailabilitySlot{}, false
}
