package emailtemplateapimodels

import (
	"strings"

	"github.com/pkg/errors"
	"hr-ats/models"
)

type EmailTemplateView struct {
	EmailTemplateData
	ID string `json:"id"` // Идентификатор шаблона
}

type EmailTemplateData struct {
	Name    string `json:"name"`    // Название шаблона
	Subject string `json:"subject"` // Тема письма
	Body    string `json:"body"`    // Текст письма, поддерживает плейсхолдеры {name} и {job}
}

type RenderedEmail struct {
	To      string `json:"to"`      // Адрес кандидата
	Subject string `json:"subject"` // Тема письма после подстановки
	Body    string `json:"body"`    // Текст письма после подстановки
}

func (d EmailTemplateData) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.Wrap(models.ErrValidation, "не указано название шаблона")
	}
	return nil
}
