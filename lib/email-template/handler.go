package emailtemplate

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ats/db"
	applicanthistoryhandler "hr-ats/lib/applicant-history"
	applicantstore "hr-ats/lib/applicant/store"
	emailtemplatestore "hr-ats/lib/email-template/store"
	"hr-ats/lib/utils/helpers"
	initchecker "hr-ats/lib/utils/init-checker"
	"hr-ats/models"
	emailtemplateapimodels "hr-ats/models/api/emailtemplate"
	dbmodels "hr-ats/models/db"
)

type Provider interface {
	Create(data emailtemplateapimodels.EmailTemplateData) (id string, err error)
	Update(id string, data emailtemplateapimodels.EmailTemplateData) error
	Delete(id string) error
	GetByID(id string) (emailtemplateapimodels.EmailTemplateView, error)
	List() (list []emailtemplateapimodels.EmailTemplateView, err error)
	RenderForApplicant(templateID, applicantID string) (emailtemplateapimodels.RenderedEmail, error)
	ComposeMailto(templateID, applicantID string) (link string, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:           emailtemplatestore.NewInstance(db.DB),
		applicantStore:  applicantstore.NewInstance(db.DB),
		historyProvider: applicanthistoryhandler.Instance,
	}
	initchecker.CheckInit(
		"historyProvider", instance.historyProvider,
	)
	Instance = instance
}

type impl struct {
	store           emailtemplatestore.Provider
	applicantStore  applicantstore.Provider
	historyProvider applicanthistoryhandler.Provider
}

func (i impl) Create(data emailtemplateapimodels.EmailTemplateData) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", err
	}
	existed, err := i.store.GetByName(data.Name)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.Wrap(models.ErrValidation, "шаблон с таким названием уже существует")
	}
	rec := dbmodels.EmailTemplate{
		Name:    data.Name,
		Subject: data.Subject,
		Body:    data.Body,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления шаблона письма")
		return "", errors.New("ошибка добавления шаблона письма")
	}
	return id, nil
}

func (i impl) Update(id string, data emailtemplateapimodels.EmailTemplateData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "шаблон письма не найден")
	}
	if rec.Name != data.Name {
		existed, err := i.store.GetByName(data.Name)
		if err != nil {
			return err
		}
		if existed != nil {
			return errors.Wrap(models.ErrValidation, "шаблон с таким названием уже существует")
		}
	}
	updMap := map[string]interface{}{
		"name":    data.Name,
		"subject": data.Subject,
		"body":    data.Body,
	}
	return i.store.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "шаблон письма не найден")
	}
	return i.store.Delete(id)
}

func (i impl) GetByID(id string) (emailtemplateapimodels.EmailTemplateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return emailtemplateapimodels.EmailTemplateView{}, err
	}
	if rec == nil {
		return emailtemplateapimodels.EmailTemplateView{}, errors.Wrap(models.ErrNotFound, "шаблон письма не найден")
	}
	return rec.ToModel(), nil
}

func (i impl) List() (list []emailtemplateapimodels.EmailTemplateView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка шаблонов письма")
		return nil, err
	}
	for _, template := range recList {
		list = append(list, template.ToModel())
	}
	return list, nil
}

// RenderForApplicant подставляет поля кандидата в плейсхолдеры {name} и {job}
// темы и текста письма.
func (i impl) RenderForApplicant(templateID, applicantID string) (emailtemplateapimodels.RenderedEmail, error) {
	msgTemplate, applicant, err := i.getTemplateWithApplicant(templateID, applicantID)
	if err != nil {
		return emailtemplateapimodels.RenderedEmail{}, err
	}
	return renderEmail(*msgTemplate, *applicant), nil
}

// ComposeMailto собирает mailto-ссылку по шаблону,
// отправка делегируется почтовому клиенту пользователя.
func (i impl) ComposeMailto(templateID, applicantID string) (link string, err error) {
	msgTemplate, applicant, err := i.getTemplateWithApplicant(templateID, applicantID)
	if err != nil {
		return "", err
	}
	if applicant.Email == "" {
		return "", errors.Wrap(models.ErrValidation, "у кандидата не указана почта")
	}
	msg := renderEmail(*msgTemplate, *applicant)
	link = fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		msg.To, helpers.MailtoEscape(msg.Subject), helpers.MailtoEscape(msg.Body))
	i.historyProvider.Save(applicant.ID, dbmodels.HistoryTypeEmail, applicanthistoryhandler.GetEmailChange(msgTemplate.Name))
	return link, nil
}

func (i impl) getTemplateWithApplicant(templateID, applicantID string) (*dbmodels.EmailTemplate, *dbmodels.Applicant, error) {
	logger := log.WithFields(log.Fields{
		"template_id":  templateID,
		"applicant_id": applicantID,
	})
	msgTemplate, err := i.store.GetByID(templateID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения шаблона письма")
		return nil, nil, err
	}
	if msgTemplate == nil {
		return nil, nil, errors.Wrap(models.ErrNotFound, "шаблон письма не найден")
	}
	applicant, err := i.applicantStore.GetByID(applicantID)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска кандидата по ID")
		return nil, nil, err
	}
	if applicant == nil {
		return nil, nil, errors.Wrap(models.ErrNotFound, "кандидат не найден")
	}
	return msgTemplate, applicant, nil
}

func renderEmail(msgTemplate dbmodels.EmailTemplate, applicant dbmodels.Applicant) emailtemplateapimodels.RenderedEmail {
	return emailtemplateapimodels.RenderedEmail{
		To:      applicant.Email,
		Subject: substitute(msgTemplate.Subject, applicant),
		Body:    substitute(msgTemplate.Body, applicant),
	}
}

func substitute(tmpl string, applicant dbmodels.Applicant) string {
	result := strings.ReplaceAll(tmpl, "{name}", applicant.Name)
	result = strings.ReplaceAll(result, "{job}", applicant.Job)
	return result
}
