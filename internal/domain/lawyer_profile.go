package domain

import (
	"time"
)

type LawyerProfile struct {
	ID                     string    `json:"id" bson:"_id"`
	LawyerID               string    `json:"lawyerId" bson:"lawyer_id"`
	FullName               string    `json:"fullName" bson:"full_name"`
	PhoneNumber            string    `json:"phoneNumber" bson:"phone_number"`
	LicenseNumber          string    `json:"licenseNumber" bson:"license_number"`
	YearsOfExperience      int       `json:"yearsOfExperience" bson:"years_of_experience"`
	CurrentWorkingLocation string    `json:"currentWorkingLocation" bson:"current_working_location"`
	MinPriceETB            float64   `json:"minPriceInETB" bson:"min_price_etb"`
	ProfileImageURL        string    `json:"profileImage,omitempty" bson:"profile_image_url"`
	CreatedAt              time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt              time.Time `json:"updatedAt" bson:"updated_at"`
}

type CreateLawyerProfileDTO struct {
	FullName               string  `json:"fullName" form:"fullName" binding:"required"`
	PhoneNumber            string  `json:"phoneNumber" form:"phoneNumber" binding:"required,phone"`
	LicenseNumber          string  `json:"licenseNumber" form:"licenseNumber" binding:"required"`
	YearsOfExperience      int     `json:"yearsOfExperience" form:"yearsOfExperience" binding:"min=0"`
	CurrentWorkingLocation string  `json:"currentWorkingLocation" form:"currentWorkingLocation" binding:"required"`
	MinPriceETB            float64 `json:"minPriceInETB" form:"minPriceInETB" binding:"min=0"`
}

type UpdateLawyerProfileDTO struct {
	FullName               *string  `json:"fullName"`
	PhoneNumber            *string  `json:"phoneNumber" binding:"omitempty,phone"`
	LicenseNumber          *string  `json:"licenseNumber"`
	YearsOfExperience      *int     `json:"yearsOfExperience" binding:"omitempty,min=0"`
	CurrentWorkingLocation *string  `json:"currentWorkingLocation"`
	MinPriceETB            *float64 `json:"minPriceInETB" binding:"omitempty,min=0"`
}

// Apply copies the set fields onto p.
func (dto UpdateLawyerProfileDTO) Apply(p *LawyerProfile) {
	if dto.FullName != nil && *dto.FullName != "" {
		p.FullName = *dto.FullName
	}
	if dto.PhoneNumber != nil && *dto.PhoneNumber != "" {
		p.PhoneNumber = *dto.PhoneNumber
	}
	if dto.LicenseNumber != nil && *dto.LicenseNumber != "" {
		p.LicenseNumber = *dto.LicenseNumber
	}
	if dto.YearsOfExperience != nil {
		p.YearsOfExperience = *dto.YearsOfExperience
	}
	if dto.CurrentWorkingLocation != nil && *dto.CurrentWorkingLocation != "" {
		p.CurrentWorkingLocation = *dto.CurrentWorkingLocation
	}
	if dto.MinPriceETB != nil {
		p.MinPriceETB = *dto.MinPriceETB
	}
}
