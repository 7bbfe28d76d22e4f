package domain

import (
	"time"
)

type User struct {
	ID           string    `json:"id" bson:"_id"`
	FirstName    string    `json:"firstName" bson:"first_name"`
	MiddleName   string    `json:"middleName" bson:"middle_name"`
	LastName     string    `json:"lastName" bson:"last_name"`
	Email        string    `json:"email" bson:"email"`
	PhoneNumber  string    `json:"phoneNumber,omitempty" bson:"phone_number,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         UserRole  `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}

type UserRole string

const (
	UserRoleClient UserRole = "client"
	UserRoleLawyer UserRole = "lawyer"
)

func (r UserRole) IsValid() bool {
	return r == UserRoleClient || r == UserRoleLawyer
}
