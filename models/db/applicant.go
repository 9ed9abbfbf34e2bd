package dbmodels

import (
	"time"

	"hr-ats/models"
)

type Applicant struct {
	BaseModel
	Name          string `gorm:"type:varchar(255)"`
	Email         string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(255)"`
	Job           string `gorm:"type:varchar(255)"`
	Notes         string
	Status        models.ApplicantStatus `gorm:"type:varchar(50);index"`
	Source        models.ApplicantSource `gorm:"type:varchar(50)"`
	AppliedDate   time.Time              `gorm:"index"`
	InterviewDate *time.Time
	HiredDate     *time.Time
}

func (a Applicant) IsAllowStatusChange(newStatus models.ApplicantStatus) (changed bool, err error) {
	return models.CheckStatusChange(a.Status, newStatus)
}

type ApplicantFilter struct {
	Status          *models.ApplicantStatus `json:"status"`
	Search          string                  `json:"search"`
	AppliedFrom     *time.Time              `json:"applied_from"`
	InterviewFrom   *time.Time              `json:"interview_from"`
	InterviewBefore *time.Time              `json:"interview_before"`
}
