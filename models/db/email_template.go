package dbmodels

import (
	emailtemplateapimodels "hr-ats/models/api/emailtemplate"
)

type EmailTemplate struct {
	BaseModel
	Name    string `gorm:"type:varchar(255);uniqueIndex"`
	Subject string `gorm:"type:varchar(255)"`
	Body    string
}

// Стартовый набор шаблонов, добавляется при первом запуске с пустой БД.
var DefaultTemplates = []EmailTemplate{
	{
		Name:    "Interview Invite",
		Subject: "Interview Invitation - {job}",
		Body:    "Hi {name},\n\nWe would like to invite you to interview for the {job} position.\n\nBest regards,\nHR Team",
	},
	{
		Name:    "Offer Sent",
		Subject: "Job Offer - {job}",
		Body:    "Dear {name},\n\nCongratulations! We are pleased to offer you the {job} position.\n\nHR Team",
	},
	{
		Name:    "Rejection",
		Subject: "Application Update",
		Body:    "Dear {name},\n\nThank you for your interest in the {job} position.\n\nWe have decided to move forward with other candidates.\n\nBest wishes,\nHR Team",
	},
}

func (r EmailTemplate) ToModel() emailtemplateapimodels.EmailTemplateView {
	return emailtemplateapimodels.EmailTemplateView{
		ID: r.ID,
		EmailTemplateData: emailtemplateapimodels.EmailTemplateData{
			Name:    r.Name,
			Subject: r.Subject,
			Body:    r.Body,
		},
	}
}
