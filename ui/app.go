// Терминальный интерфейс приложения построен по Elm-архитектуре bubbletea:
// Model хранит состояние, Update обрабатывает сообщения, View отрисовывает экран.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"hr-ats/models"
	applicantapimodels "hr-ats/models/api/applicant"
	emailtemplateapimodels "hr-ats/models/api/emailtemplate"
)

type screen int

const (
	screenDashboard screen = iota
	screenApplicants
	screenApplicantDetail
	screenTemplates
	screenSettings
	screenForm         // активная форма ввода
	screenStatusPick   // выбор нового статуса кандидата
	screenTemplatePick // выбор шаблона письма
)

var tabTitles = []string{"Дашборд", "Кандидаты", "Шаблоны", "Настройки"}

type App struct {
	screen     screen
	prevScreen screen

	width  int
	height int

	statusMsg string
	errMsg    string

	dashboard applicantapimodels.DashboardData

	applicantList list.Model
	templateList  list.Model
	settingList   list.Model
	statusPick    list.Model
	templatePick  list.Model

	search string

	detail  applicantapimodels.ApplicantView
	history []applicantapimodels.ApplicantHistoryView

	form *inputForm
}

func NewApp() *App {
	newList := func(title string) list.Model {
		l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
		l.Title = title
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(false)
		return l
	}
	statusItems := make([]list.Item, 0, len(models.ApplicantStatuses))
	for _, status := range models.ApplicantStatuses {
		statusItems = append(statusItems, statusItem{status: status})
	}
	statusPick := newList("Новый статус")
	statusPick.SetItems(statusItems)
	return &App{
		screen:        screenDashboard,
		applicantList: newList("Кандидаты"),
		templateList:  newList("Шаблоны писем"),
		settingList:   newList("Настройки"),
		statusPick:    statusPick,
		templatePick:  newList("Шаблон письма"),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(loadDashboard, loadApplicants(""), loadTemplates, loadSettings)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		listWidth := max(20, msg.Width-6)
		listHeight := max(10, msg.Height-10)
		a.applicantList.SetSize(listWidth, listHeight)
		a.templateList.SetSize(listWidth, listHeight)
		a.settingList.SetSize(listWidth, listHeight)
		a.statusPick.SetSize(listWidth, listHeight)
		a.templatePick.SetSize(listWidth, listHeight)
		return a, nil

	case dashboardMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.dashboard = msg.data
		return a, nil

	case applicantListMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		items := make([]list.Item, 0, len(msg.list))
		for _, view := range msg.list {
			items = append(items, applicantItem{view: view})
		}
		a.applicantList.SetItems(items)
		return a, nil

	case applicantDetailMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			a.screen = screenApplicants
			return a, nil
		}
		a.detail = msg.view
		a.history = msg.history
		a.screen = screenApplicantDetail
		return a, nil

	case templateListMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		items := make([]list.Item, 0, len(msg.list))
		for _, view := range msg.list {
			items = append(items, templateItem{view: view})
		}
		a.templateList.SetItems(items)
		a.templatePick.SetItems(items)
		return a, nil

	case settingListMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		items := make([]list.Item, 0, len(msg.list))
		for _, view := range msg.list {
			items = append(items, settingItem{view: view})
		}
		a.settingList.SetItems(items)
		return a, nil

	case opDoneMsg:
		return a.handleOpDone(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.updateActiveList(msg)
}

// handleOpDone показывает результат операции и перезагружает данные экрана.
func (a *App) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		a.errMsg = msg.err.Error()
		return a, nil
	}
	a.errMsg = ""
	a.statusMsg = msg.status
	a.form = nil
	cmds := []tea.Cmd{loadDashboard, loadApplicants(a.search), loadTemplates, loadSettings}
	switch a.screen {
	case screenForm, screenStatusPick, screenTemplatePick:
		a.screen = a.prevScreen
	}
	if a.screen == screenApplicantDetail {
		if a.detail.ID != "" {
			cmds = append(cmds, loadApplicantDetail(a.detail.ID))
		} else {
			a.screen = screenApplicants
		}
	}
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.screen == screenForm && a.form != nil {
		if key == "esc" {
			a.form = nil
			a.screen = a.prevScreen
			return a, nil
		}
		return a, a.form.Update(msg)
	}

	switch key {
	case "esc":
		switch a.screen {
		case screenApplicantDetail:
			a.screen = screenApplicants
		case screenStatusPick, screenTemplatePick:
			a.screen = a.prevScreen
		}
		return a, nil
	case "q":
		switch a.screen {
		case screenDashboard, screenApplicants, screenTemplates, screenSettings:
			return a, tea.Quit
		}
	case "1", "2", "3", "4":
		return a.switchTab(key)
	}

	switch a.screen {
	case screenDashboard:
		if key == "r" {
			return a, tea.Cmd(loadDashboard)
		}
	case screenApplicants:
		return a.handleApplicantsKey(msg)
	case screenApplicantDetail:
		return a.handleDetailKey(msg)
	case screenTemplates:
		return a.handleTemplatesKey(msg)
	case screenSettings:
		return a.handleSettingsKey(msg)
	case screenStatusPick:
		if key == "enter" {
			item, ok := a.statusPick.SelectedItem().(statusItem)
			if !ok {
				return a, nil
			}
			return a, updateStatus(a.detail.ID, item.status)
		}
	case screenTemplatePick:
		if key == "enter" {
			item, ok := a.templatePick.SelectedItem().(templateItem)
			if !ok {
				return a, nil
			}
			return a, composeEmail(item.view.ID, a.detail.ID)
		}
	}
	return a, a.updateActiveList(msg)
}

func (a *App) switchTab(key string) (tea.Model, tea.Cmd) {
	switch a.screen {
	case screenDashboard, screenApplicants, screenApplicantDetail, screenTemplates, screenSettings:
	default:
		return a, nil
	}
	switch key {
	case "1":
		a.screen = screenDashboard
		return a, tea.Cmd(loadDashboard)
	case "2":
		a.screen = screenApplicants
		return a, loadApplicants(a.search)
	case "3":
		a.screen = screenTemplates
		return a, tea.Cmd(loadTemplates)
	case "4":
		a.screen = screenSettings
		return a, tea.Cmd(loadSettings)
	}
	return a, nil
}

func (a *App) handleApplicantsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		item, ok := a.applicantList.SelectedItem().(applicantItem)
		if !ok {
			return a, nil
		}
		return a, loadApplicantDetail(item.view.ID)
	case "n":
		a.openApplicantForm()
		return a, nil
	case "d":
		item, ok := a.applicantList.SelectedItem().(applicantItem)
		if !ok {
			return a, nil
		}
		return a, deleteApplicant(item.view.ID)
	case "i":
		a.openImportForm()
		return a, nil
	case "x":
		return a, exportApplicantsXls(a.search)
	case "/":
		a.openSearchForm()
		return a, nil
	case "r":
		return a, loadApplicants(a.search)
	}
	return a, a.updateActiveList(msg)
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		a.prevScreen = screenApplicantDetail
		a.screen = screenStatusPick
		return a, nil
	case "v":
		a.openInterviewForm()
		return a, nil
	case "e":
		a.openNotesForm()
		return a, nil
	case "u":
		a.openEditForm()
		return a, nil
	case "m":
		a.prevScreen = screenApplicantDetail
		a.screen = screenTemplatePick
		return a, nil
	case "o":
		return a, exportOfferPdf(a.detail)
	case "d":
		id := a.detail.ID
		a.screen = screenApplicants
		a.detail = applicantapimodels.ApplicantView{}
		return a, deleteApplicant(id)
	}
	return a, nil
}

func (a *App) handleTemplatesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		a.openTemplateForm(nil)
		return a, nil
	case "enter":
		item, ok := a.templateList.SelectedItem().(templateItem)
		if !ok {
			return a, nil
		}
		a.openTemplateForm(&item.view)
		return a, nil
	case "d":
		item, ok := a.templateList.SelectedItem().(templateItem)
		if !ok {
			return a, nil
		}
		return a, deleteTemplate(item.view.ID)
	case "r":
		return a, tea.Cmd(loadTemplates)
	}
	return a, a.updateActiveList(msg)
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		item, ok := a.settingList.SelectedItem().(settingItem)
		if !ok {
			return a, nil
		}
		a.openSettingForm(item.view.Name, item.view.Code, item.view.Value)
		return a, nil
	case "t":
		item, ok := a.settingList.SelectedItem().(settingItem)
		if !ok {
			return a, nil
		}
		return a, testJobBoard(item.view.Code)
	case "r":
		return a, tea.Cmd(loadSettings)
	}
	return a, a.updateActiveList(msg)
}

func (a *App) updateActiveList(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.screen {
	case screenApplicants:
		a.applicantList, cmd = a.applicantList.Update(msg)
	case screenTemplates:
		a.templateList, cmd = a.templateList.Update(msg)
	case screenSettings:
		a.settingList, cmd = a.settingList.Update(msg)
	case screenStatusPick:
		a.statusPick, cmd = a.statusPick.Update(msg)
	case screenTemplatePick:
		a.templatePick, cmd = a.templatePick.Update(msg)
	}
	return cmd
}

func (a *App) openForm(form *inputForm) {
	a.prevScreen = a.screen
	a.form = form
	a.screen = screenForm
}

func (a *App) openApplicantForm() {
	a.openForm(newInputForm("Новый кандидат", []formField{
		{label: "Имя", placeholder: "ФИО кандидата"},
		{label: "Email", placeholder: "email@example.com"},
		{label: "Телефон"},
		{label: "Вакансия"},
		{label: "Заметки"},
		{label: "Дата отклика", placeholder: "ГГГГ-ММ-ДД, пусто - сегодня"},
	}, func(values []string) tea.Cmd {
		return createApplicant(applicantapimodels.ApplicantData{
			Name:        values[0],
			Email:       values[1],
			Phone:       values[2],
			Job:         values[3],
			Notes:       values[4],
			AppliedDate: values[5],
		})
	}))
}

func (a *App) openEditForm() {
	view := a.detail
	a.openForm(newInputForm("Кандидат: "+view.Name, []formField{
		{label: "Имя", value: view.Name},
		{label: "Email", value: view.Email},
		{label: "Телефон", value: view.Phone},
		{label: "Вакансия", value: view.Job},
		{label: "Заметки", value: view.Notes},
		{label: "Дата отклика", value: view.AppliedDate, placeholder: "ГГГГ-ММ-ДД"},
	}, func(values []string) tea.Cmd {
		return updateApplicant(view.ID, applicantapimodels.ApplicantData{
			Name:        values[0],
			Email:       values[1],
			Phone:       values[2],
			Job:         values[3],
			Notes:       values[4],
			AppliedDate: values[5],
		})
	}))
}

func (a *App) openInterviewForm() {
	a.openForm(newInputForm("Назначить собеседование", []formField{
		{label: "Дата", placeholder: "ГГГГ-ММ-ДД", value: a.detail.InterviewDate},
	}, func(values []string) tea.Cmd {
		return scheduleInterview(a.detail.ID, values[0])
	}))
}

func (a *App) openNotesForm() {
	a.openForm(newInputForm("Заметки", []formField{
		{label: "Текст", value: a.detail.Notes},
	}, func(values []string) tea.Cmd {
		return updateNotes(a.detail.ID, values[0])
	}))
}

func (a *App) openImportForm() {
	a.openForm(newInputForm("Импорт из CSV", []formField{
		{label: "Путь к файлу", placeholder: "applicants.csv"},
	}, func(values []string) tea.Cmd {
		return importCsv(values[0])
	}))
}

func (a *App) openSearchForm() {
	a.openForm(newInputForm("Поиск", []formField{
		{label: "Имя, email, телефон или вакансия", value: a.search},
	}, func(values []string) tea.Cmd {
		a.search = values[0]
		a.form = nil
		a.screen = screenApplicants
		return loadApplicants(a.search)
	}))
}

func (a *App) openTemplateForm(view *emailtemplateapimodels.EmailTemplateView) {
	title := "Новый шаблон"
	data := emailtemplateapimodels.EmailTemplateData{}
	id := ""
	if view != nil {
		title = "Шаблон: " + view.Name
		data = view.EmailTemplateData
		id = view.ID
	}
	a.openForm(newInputForm(title, []formField{
		{label: "Название", value: data.Name},
		{label: "Тема", value: data.Subject, placeholder: "поддерживает {name} и {job}"},
		{label: "Текст", value: data.Body, placeholder: "поддерживает {name} и {job}"},
	}, func(values []string) tea.Cmd {
		payload := emailtemplateapimodels.EmailTemplateData{
			Name:    values[0],
			Subject: values[1],
			Body:    values[2],
		}
		if id == "" {
			return createTemplate(payload)
		}
		return updateTemplate(id, payload)
	}))
}

func (a *App) openSettingForm(name string, code models.SettingCode, value string) {
	a.openForm(newInputForm("Настройка: "+name, []formField{
		{label: "Значение", value: value},
	}, func(values []string) tea.Cmd {
		return updateSetting(code, values[0])
	}))
}

func (a *App) View() string {
	var content string
	switch a.screen {
	case screenDashboard:
		content = a.renderDashboard()
	case screenApplicants:
		content = a.applicantList.View()
	case screenApplicantDetail:
		content = a.renderDetail()
	case screenTemplates:
		content = a.templateList.View()
	case screenSettings:
		content = a.settingList.View()
	case screenForm:
		if a.form != nil {
			content = a.form.View()
		}
	case screenStatusPick:
		content = a.statusPick.View()
	case screenTemplatePick:
		content = a.templatePick.View()
	}
	sections := []string{
		headerStyle.Render("HR ATS"),
		a.renderTabs(),
		panelStyle.Width(max(40, a.width-2)).Render(content),
		a.renderFooter(),
	}
	return strings.Join(sections, "\n")
}

func (a *App) renderTabs() string {
	active := -1
	switch a.screen {
	case screenDashboard:
		active = 0
	case screenApplicants, screenApplicantDetail:
		active = 1
	case screenTemplates:
		active = 2
	case screenSettings:
		active = 3
	}
	tabs := make([]string, 0, len(tabTitles))
	for idx, title := range tabTitles {
		label := fmt.Sprintf("%d %s", idx+1, title)
		if idx == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) renderDashboard() string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Всего кандидатов: %d", a.dashboard.Total)),
		"",
	}
	for _, item := range a.dashboard.StatusCounts {
		lines = append(lines, fmt.Sprintf("%-12s %d", item.Status, item.Count))
	}
	lines = append(lines, "", titleStyle.Render(fmt.Sprintf("Собеседования в ближайшие 7 дней: %d", len(a.dashboard.Upcoming))))
	for _, view := range a.dashboard.Upcoming {
		lines = append(lines, fmt.Sprintf("%s · %s · %s", view.InterviewDate, view.Name, view.Job))
	}
	lines = append(lines, "", titleStyle.Render(fmt.Sprintf("Добавлены за последние 7 дней: %d", len(a.dashboard.Recent))))
	for _, view := range a.dashboard.Recent {
		lines = append(lines, fmt.Sprintf("%s · %s · %s", view.AppliedDate, view.Name, view.Job))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderDetail() string {
	view := a.detail
	lines := []string{
		titleStyle.Render(view.Name),
		"",
		labelStyle.Render("Статус:      ") + string(view.Status),
		labelStyle.Render("Вакансия:    ") + view.Job,
		labelStyle.Render("Email:       ") + view.Email,
		labelStyle.Render("Телефон:     ") + view.Phone,
		labelStyle.Render("Источник:    ") + string(view.Source),
		labelStyle.Render("Дата отклика:") + " " + view.AppliedDate,
	}
	if view.InterviewDate != "" {
		lines = append(lines, labelStyle.Render("Собеседование:")+" "+view.InterviewDate)
	}
	if view.Notes != "" {
		lines = append(lines, "", labelStyle.Render("Заметки:"), view.Notes)
	}
	if len(a.history) != 0 {
		lines = append(lines, "", titleStyle.Render("История"))
		for _, rec := range a.history {
			lines = append(lines, fmt.Sprintf("%s · %s", rec.Date.Format(applicantapimodels.DateFormat), rec.Description))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderFooter() string {
	hint := ""
	switch a.screen {
	case screenDashboard:
		hint = "r - обновить    q - выход"
	case screenApplicants:
		hint = "Enter - карточка    n - добавить    d - удалить    i - импорт CSV    x - выгрузка XLSX    / - поиск"
	case screenApplicantDetail:
		hint = "s - статус    v - собеседование    u - редактировать    e - заметки    m - письмо    o - оффер PDF    d - удалить    Esc - назад"
	case screenTemplates:
		hint = "Enter - изменить    n - добавить    d - удалить"
	case screenSettings:
		hint = "Enter - изменить значение    t - проверить площадку"
	case screenStatusPick, screenTemplatePick:
		hint = "Enter - выбрать    Esc - отмена"
	}
	parts := []string{footerStyle.Render(hint)}
	if a.statusMsg != "" {
		parts = append(parts, footerStyle.Render(a.statusMsg))
	}
	if a.errMsg != "" {
		parts = append(parts, errStyle.Render(a.errMsg))
	}
	return strings.Join(parts, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
