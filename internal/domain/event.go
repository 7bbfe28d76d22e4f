package domain

import "time"

const (
	EventSlotCreated = "slot.created"
	EventSlotDeleted = "slot.deleted"
	EventCaseCreated = "case.created"
)

type Event struct {
	ID         string    `json:"id"`
	EventType  string    `json:"eventType"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type SlotEventPayload struct {
	SlotID        string `json:"slotId"`
	LawyerID      string `json:"lawyerId"`
	AvailableDate string `json:"availableDate"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
}

type CaseCreatedPayload struct {
	CaseID          string `json:"caseId"`
	ClientID        string `json:"clientId"`
	LawyerProfileID string `json:"lawyerProfileId"`
	SlotID          string `json:"slotId"`
	CaseType        string `json:"caseType"`
}
