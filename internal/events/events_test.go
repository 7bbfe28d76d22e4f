package events

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalease/internal/domain"
)

func TestNewEventEncoding(t *testing.T) {
	e := New(domain.EventSlotCreated, domain.SlotEventPayload{
		SlotID:        "s1",
		LawyerID:      "l1",
		AvailableDate: "2024-06-01",
		StartTime:     "09:00",
		EndTime:       "10:00",
	})
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.OccurredAt.IsZero())

	body, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "slot.created", decoded["eventType"])
	payload := decoded["payload"].(map[string]any)
	assert.Equal(t, "09:00", payload["startTime"])
}

func TestRecorder(t *testing.T) {
	var r Recorder
	require.NoError(t, r.Publish(context.Background(), New(domain.EventCaseCreated, nil)))
	require.NoError(t, Nop{}.Publish(context.Background(), New(domain.EventSlotDeleted, nil)))

	assert.Equal(t, []string{domain.EventCaseCreated}, r.Types())
	assert.Len(t, r.Events(), 1)
}
