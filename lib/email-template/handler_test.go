package emailtemplate

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"hr-ats/db"
	"hr-ats/lib/applicant"
	applicanthistoryhandler "hr-ats/lib/applicant-history"
	"hr-ats/models"
	applicantapimodels "hr-ats/models/api/applicant"
	emailtemplateapimodels "hr-ats/models/api/emailtemplate"
	dbmodels "hr-ats/models/db"
)

func setupTest(t *testing.T) {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.Nil(t, err)
	// один коннект в пуле, иначе каждая сессия получает свою :memory: БД
	sqlDB, err := gormDB.DB()
	require.Nil(t, err)
	sqlDB.SetMaxOpenConns(1)
	db.DB = gormDB
	require.Nil(t, db.AutoMigrateDB())
	applicanthistoryhandler.NewHandler()
	applicant.NewHandler()
	NewHandler()
}

func createApplicant(t *testing.T, data applicantapimodels.ApplicantData) string {
	id, err := applicant.Instance.Create(data)
	require.Nil(t, err)
	return id
}

func createTemplate(t *testing.T, data emailtemplateapimodels.EmailTemplateData) string {
	id, err := Instance.Create(data)
	require.Nil(t, err)
	return id
}

func TestEmailTemplateHandler(t *testing.T) {
	t.Run(`создание и получение шаблона`, func(t *testing.T) {
		setupTest(t)
		id := createTemplate(t, emailtemplateapimodels.EmailTemplateData{
			Name:    "Приглашение",
			Subject: "Interview Invitation - {job}",
			Body:    "Dear {name}, we would like to invite you to an interview.",
		})
		view, err := Instance.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, "Приглашение", view.Name)
	})

	t.Run(`дубль названия запрещен`, func(t *testing.T) {
		setupTest(t)
		createTemplate(t, emailtemplateapimodels.EmailTemplateData{Name: "Приглашение"})
		_, err := Instance.Create(emailtemplateapimodels.EmailTemplateData{Name: "Приглашение"})
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrValidation))
	})

	t.Run(`шаблон без названия`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.Create(emailtemplateapimodels.EmailTemplateData{Subject: "Тема"})
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrValidation))
	})

	t.Run(`обновление и удаление`, func(t *testing.T) {
		setupTest(t)
		id := createTemplate(t, emailtemplateapimodels.EmailTemplateData{Name: "Приглашение"})
		err := Instance.Update(id, emailtemplateapimodels.EmailTemplateData{
			Name:    "Приглашение на собеседование",
			Subject: "Interview",
		})
		require.Nil(t, err)
		view, err := Instance.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, "Приглашение на собеседование", view.Name)

		require.Nil(t, Instance.Delete(id))
		_, err = Instance.GetByID(id)
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))

		err = Instance.Delete(id)
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))
	})

	t.Run(`подстановка плейсхолдеров`, func(t *testing.T) {
		setupTest(t)
		applicantID := createApplicant(t, applicantapimodels.ApplicantData{
			Name:  "Ada",
			Email: "ada@example.com",
			Job:   "Engineer",
		})
		templateID := createTemplate(t, emailtemplateapimodels.EmailTemplateData{
			Name:    "Приглашение",
			Subject: "Hello {name}, re: {job}",
			Body:    "Dear {name}, the {job} team awaits. Regards, {name}'s future employer.",
		})
		msg, err := Instance.RenderForApplicant(templateID, applicantID)
		require.Nil(t, err)
		require.Equal(t, "ada@example.com", msg.To)
		require.Equal(t, "Hello Ada, re: Engineer", msg.Subject)
		require.Equal(t, "Dear Ada, the Engineer team awaits. Regards, Ada's future employer.", msg.Body)
	})

	t.Run(`mailto-ссылка с экранированием`, func(t *testing.T) {
		setupTest(t)
		applicantID := createApplicant(t, applicantapimodels.ApplicantData{
			Name:  "Ada",
			Email: "ada@example.com",
			Job:   "Engineer",
		})
		templateID := createTemplate(t, emailtemplateapimodels.EmailTemplateData{
			Name:    "Приглашение",
			Subject: "Hello {name}",
			Body:    "Re: {job} & more",
		})
		link, err := Instance.ComposeMailto(templateID, applicantID)
		require.Nil(t, err)
		require.Equal(t, "mailto:ada@example.com?subject=Hello%20Ada&body=Re%3A%20Engineer%20%26%20more", link)

		history, _, err := applicanthistoryhandler.Instance.List(applicantID)
		require.Nil(t, err)
		emailActions := 0
		for _, rec := range history {
			if rec.ActionType == dbmodels.HistoryTypeEmail {
				emailActions++
			}
		}
		require.Equal(t, 1, emailActions)
	})

	t.Run(`mailto без почты кандидата`, func(t *testing.T) {
		setupTest(t)
		applicantID := createApplicant(t, applicantapimodels.ApplicantData{Name: "Ada"})
		templateID := createTemplate(t, emailtemplateapimodels.EmailTemplateData{Name: "Приглашение"})
		_, err := Instance.ComposeMailto(templateID, applicantID)
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrValidation))
	})

	t.Run(`шаблон не найден`, func(t *testing.T) {
		setupTest(t)
		applicantID := createApplicant(t, applicantapimodels.ApplicantData{Name: "Ada"})
		_, err := Instance.RenderForApplicant("missing-id", applicantID)
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrNotFound))
	})
}
