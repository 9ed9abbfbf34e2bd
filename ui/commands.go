package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"hr-ats/config"
	"hr-ats/lib/analytics"
	"hr-ats/lib/applicant"
	applicanthistoryhandler "hr-ats/lib/applicant-history"
	emailtemplate "hr-ats/lib/email-template"
	pdfexport "hr-ats/lib/export/pdf"
	xlsexport "hr-ats/lib/export/xls"
	"hr-ats/lib/import/csvimport"
	"hr-ats/lib/settings"
	"hr-ats/lib/utils/helpers"
	"hr-ats/models"
	applicantapimodels "hr-ats/models/api/applicant"
	emailtemplateapimodels "hr-ats/models/api/emailtemplate"
	settingapimodels "hr-ats/models/api/setting"
	dbmodels "hr-ats/models/db"
)

type dashboardMsg struct {
	data applicantapimodels.DashboardData
	err  error
}

type applicantListMsg struct {
	list []applicantapimodels.ApplicantView
	err  error
}

type applicantDetailMsg struct {
	view    applicantapimodels.ApplicantView
	history []applicantapimodels.ApplicantHistoryView
	err     error
}

type templateListMsg struct {
	list []emailtemplateapimodels.EmailTemplateView
	err  error
}

type settingListMsg struct {
	list []settingapimodels.SettingView
	err  error
}

// opDoneMsg сообщает результат операции изменения данных,
// после нее экраны перезагружают свои списки.
type opDoneMsg struct {
	status string
	err    error
}

func loadDashboard() tea.Msg {
	data, err := analytics.Instance.Dashboard()
	return dashboardMsg{data: data, err: err}
}

func loadApplicants(search string) tea.Cmd {
	return func() tea.Msg {
		filter := dbmodels.ApplicantFilter{}
		if strings.TrimSpace(search) != "" {
			filter.Search = strings.TrimSpace(search)
		}
		list, err := applicant.Instance.List(filter)
		return applicantListMsg{list: list, err: err}
	}
}

func loadApplicantDetail(id string) tea.Cmd {
	return func() tea.Msg {
		view, err := applicant.Instance.GetByID(id)
		if err != nil {
			return applicantDetailMsg{err: err}
		}
		history, _, err := applicanthistoryhandler.Instance.List(id)
		if err != nil {
			return applicantDetailMsg{err: err}
		}
		return applicantDetailMsg{view: view, history: history}
	}
}

func loadTemplates() tea.Msg {
	list, err := emailtemplate.Instance.List()
	return templateListMsg{list: list, err: err}
}

func loadSettings() tea.Msg {
	list, err := settings.Instance.List()
	return settingListMsg{list: list, err: err}
}

func createApplicant(data applicantapimodels.ApplicantData) tea.Cmd {
	return func() tea.Msg {
		_, err := applicant.Instance.Create(data)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Кандидат добавлен"}
	}
}

func updateApplicant(id string, data applicantapimodels.ApplicantData) tea.Cmd {
	return func() tea.Msg {
		if err := applicant.Instance.Update(id, data); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Данные кандидата сохранены"}
	}
}

func deleteApplicant(id string) tea.Cmd {
	return func() tea.Msg {
		if err := applicant.Instance.Delete(id); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Кандидат удален"}
	}
}

func updateStatus(id string, status models.ApplicantStatus) tea.Cmd {
	return func() tea.Msg {
		if err := applicant.Instance.UpdateStatus(id, status); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: fmt.Sprintf("Статус изменен на %s", status)}
	}
}

func scheduleInterview(id, dateValue string) tea.Cmd {
	return func() tea.Msg {
		date, err := time.Parse(applicantapimodels.DateFormat, strings.TrimSpace(dateValue))
		if err != nil {
			return opDoneMsg{err: fmt.Errorf("некорректный формат даты, ожидается ГГГГ-ММ-ДД")}
		}
		if err = applicant.Instance.ScheduleInterview(id, date); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Собеседование назначено"}
	}
}

func updateNotes(id, notes string) tea.Cmd {
	return func() tea.Msg {
		if err := applicant.Instance.UpdateNotes(id, notes); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Заметки сохранены"}
	}
}

func importCsv(filePath string) tea.Cmd {
	return func() tea.Msg {
		result, err := csvimport.Instance.ImportFile(strings.TrimSpace(filePath))
		if err != nil {
			return opDoneMsg{err: err}
		}
		status := fmt.Sprintf("Импортировано кандидатов: %d", result.Added)
		if len(result.RowErrors) != 0 {
			status += fmt.Sprintf(", пропущено строк: %d", len(result.RowErrors))
		}
		return opDoneMsg{status: status}
	}
}

func exportApplicantsXls(search string) tea.Cmd {
	return func() tea.Msg {
		filter := dbmodels.ApplicantFilter{Search: strings.TrimSpace(search)}
		list, err := applicant.Instance.List(filter)
		if err != nil {
			return opDoneMsg{err: err}
		}
		filePath, err := xlsexport.Instance.WriteApplicantList(config.Conf.App.ExportDir, list)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: fmt.Sprintf("Список выгружен: %s", filePath)}
	}
}

func exportOfferPdf(view applicantapimodels.ApplicantView) tea.Cmd {
	return func() tea.Msg {
		filePath, err := pdfexport.WriteOffer(config.Conf.App.ExportDir, view)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: fmt.Sprintf("Оффер сохранен: %s", filePath)}
	}
}

func composeEmail(templateID, applicantID string) tea.Cmd {
	return func() tea.Msg {
		link, err := emailtemplate.Instance.ComposeMailto(templateID, applicantID)
		if err != nil {
			return opDoneMsg{err: err}
		}
		if err = helpers.OpenInBrowser(link); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Письмо открыто в почтовом клиенте"}
	}
}

func createTemplate(data emailtemplateapimodels.EmailTemplateData) tea.Cmd {
	return func() tea.Msg {
		_, err := emailtemplate.Instance.Create(data)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Шаблон добавлен"}
	}
}

func updateTemplate(id string, data emailtemplateapimodels.EmailTemplateData) tea.Cmd {
	return func() tea.Msg {
		if err := emailtemplate.Instance.Update(id, data); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Шаблон сохранен"}
	}
}

func deleteTemplate(id string) tea.Cmd {
	return func() tea.Msg {
		if err := emailtemplate.Instance.Delete(id); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Шаблон удален"}
	}
}

func updateSetting(code models.SettingCode, value string) tea.Cmd {
	return func() tea.Msg {
		if err := settings.Instance.Update(code, strings.TrimSpace(value)); err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: "Настройка сохранена"}
	}
}

func testJobBoard(code models.SettingCode) tea.Cmd {
	return func() tea.Msg {
		result, err := settings.Instance.TestJobBoard(code)
		if err != nil {
			return opDoneMsg{err: err}
		}
		return opDoneMsg{status: result}
	}
}
