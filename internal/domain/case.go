package domain

import (
	"time"
)

type CaseStatus string

const (
	CaseStatusOpen   CaseStatus = "open"
	CaseStatusClosed CaseStatus = "closed"
)

type Case struct {
	ID              string            `json:"id" bson:"_id"`
	Title           string            `json:"caseTitle" bson:"title"`
	Description     string            `json:"caseDescription" bson:"description"`
	CaseType        string            `json:"caseType" bson:"case_type"`
	ClientID        string            `json:"clientId" bson:"client_id"`
	LawyerProfileID string            `json:"lawyerId" bson:"lawyer_profile_id"`
	SlotID          string            `json:"appointmentTimeId" bson:"slot_id"`
	CaseFileKey     string            `json:"-" bson:"case_file_key"`
	Status          CaseStatus        `json:"status" bson:"status"`
	AppointmentTime *AvailabilitySlot `json:"appointmentTime,omitempty" bson:"-"`
	Lawyer          *LawyerProfile    `json:"lawyer,omitempty" bson:"-"`
	Client          *User             `json:"client,omitempty" bson:"-"`
	HasDocument     bool              `json:"hasDocument" bson:"-"`
	CreatedAt       time.Time         `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" bson:"updated_at"`
}

// CreateCaseDTO is the JSON form. CaseFile is an optional base64 payload
// (a data URL prefix is accepted).
type CreateCaseDTO struct {
	Title           string `json:"caseTitle" form:"caseTitle" binding:"required"`
	Description     string `json:"caseDescription" form:"caseDescription" binding:"required"`
	CaseType        string `json:"caseType" form:"caseType" binding:"required"`
	LawyerProfileID string `json:"lawyerId" form:"lawyerId" binding:"required"`
	SlotID          string `json:"appointmentTime" form:"appointmentTime" binding:"required"`
	CaseFile        string `json:"caseFile" form:"-"`
	CaseFileName    string `json:"caseFileName" form:"-"`
}

type CaseDocument struct {
	Data     []byte
	Filename string
}

type LawyerStats struct {
	Cases   int `json:"cases"`
	Clients int `json:"clients"`
}
