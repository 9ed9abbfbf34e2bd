package ui

import (
	"fmt"

	"hr-ats/models"
	applicantapimodels "hr-ats/models/api/applicant"
	emailtemplateapimodels "hr-ats/models/api/emailtemplate"
	settingapimodels "hr-ats/models/api/setting"
)

type applicantItem struct {
	view applicantapimodels.ApplicantView
}

func (i applicantItem) Title() string {
	if i.view.Job == "" {
		return i.view.Name
	}
	return fmt.Sprintf("%s · %s", i.view.Name, i.view.Job)
}

func (i applicantItem) Description() string {
	desc := fmt.Sprintf("%s · отклик %s", i.view.Status, i.view.AppliedDate)
	if i.view.InterviewDate != "" {
		desc += fmt.Sprintf(" · собеседование %s", i.view.InterviewDate)
	}
	return desc
}

func (i applicantItem) FilterValue() string { return i.view.Name }

type templateItem struct {
	view emailtemplateapimodels.EmailTemplateView
}

func (i templateItem) Title() string       { return i.view.Name }
func (i templateItem) Description() string { return i.view.Subject }
func (i templateItem) FilterValue() string { return i.view.Name }

type settingItem struct {
	view settingapimodels.SettingView
}

func (i settingItem) Title() string       { return i.view.Name }
func (i settingItem) Description() string { return i.view.Value }
func (i settingItem) FilterValue() string { return i.view.Name }

type statusItem struct {
	status models.ApplicantStatus
}

func (i statusItem) Title() string       { return string(i.status) }
func (i statusItem) Description() string { return "" }
func (i statusItem) FilterValue() string { return string(i.status) }
