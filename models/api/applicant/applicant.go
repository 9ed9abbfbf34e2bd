package applicantapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"hr-ats/models"
	dbmodels "hr-ats/models/db"
)

const DateFormat = "2006-01-02"

type ApplicantView struct {
	ApplicantData
	ID            string                 `json:"id"`             // Идентификатор кандидата
	Status        models.ApplicantStatus `json:"status"`         // Статус кандидата
	InterviewDate string                 `json:"interview_date"` // Дата собеседования ГГГГ-ММ-ДД
	CreatedAt     time.Time              `json:"created_at"`     // Дата добавления записи
}

type ApplicantData struct {
	Name        string                 `json:"name"`         // ФИО кандидата
	Email       string                 `json:"email"`        // Емайл
	Phone       string                 `json:"phone"`        // Телефон
	Job         string                 `json:"job"`          // Вакансия
	Notes       string                 `json:"notes"`        // Заметки
	Source      models.ApplicantSource `json:"source"`       // Источник кандидата
	AppliedDate string                 `json:"applied_date"` // Дата отклика ГГГГ-ММ-ДД
}

func (a ApplicantData) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.Wrap(models.ErrValidation, "не указано имя кандидата")
	}
	_, err := a.GetAppliedDate()
	if err != nil {
		return errors.Wrap(models.ErrValidation, "некорректный формат даты отклика")
	}
	return nil
}

func (a ApplicantData) GetAppliedDate() (time.Time, error) {
	if a.AppliedDate == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(DateFormat, a.AppliedDate)
	if err != nil {
		return time.Time{}, err
	}
	return date, nil
}

func ApplicantConvert(rec dbmodels.Applicant) ApplicantView {
	result := ApplicantView{
		ApplicantData: ApplicantData{
			Name:   rec.Name,
			Email:  rec.Email,
			Phone:  rec.Phone,
			Job:    rec.Job,
			Notes:  rec.Notes,
			Source: rec.Source,
		},
		ID:        rec.ID,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
	}
	if !rec.AppliedDate.IsZero() {
		result.AppliedDate = rec.AppliedDate.Format(DateFormat)
	}
	if rec.InterviewDate != nil && !rec.InterviewDate.IsZero() {
		result.InterviewDate = rec.InterviewDate.Format(DateFormat)
	}
	return result
}

type StatusCount struct {
	Status models.ApplicantStatus `json:"status"` // Статус
	Count  int64                  `json:"count"`  // Количество кандидатов в статусе
}

type DashboardData struct {
	Total        int64           `json:"total"`         // Всего кандидатов
	StatusCounts []StatusCount   `json:"status_counts"` // Распределение по статусам
	Upcoming     []ApplicantView `json:"upcoming"`      // Собеседования в ближайшие 7 дней
	Recent       []ApplicantView `json:"recent"`        // Добавленные за последние 7 дней
}

type ApplicantHistoryView struct {
	ID          string                     `json:"id"`          // Идентификатор записи
	Date        time.Time                  `json:"date"`        // Дата действия
	ActionType  dbmodels.ActionType        `json:"action_type"` // Тип действия
	Description string                     `json:"description"` // Описание
	Data        []dbmodels.ApplicantChange `json:"data"`        // Список изменений
}
