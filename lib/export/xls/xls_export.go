package xlsexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	applicantapimodels "hr-ats/models/api/applicant"
)

type Provider interface {
	ExportApplicantList(list []applicantapimodels.ApplicantView) (*bytes.Buffer, error)
	WriteApplicantList(exportDir string, list []applicantapimodels.ApplicantView) (filePath string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var applicantHeaders = []string{"ФИО", "Контакты", "Вакансия", "Статус", "Источник кандидата", "Дата отклика", "Дата собеседования", "Заметки"}

func (i impl) ExportApplicantList(list []applicantapimodels.ApplicantView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	w, err := newSheetWriter(f, sheet, applicantHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	for _, item := range list {
		err = w.writeRow(
			item.Name,
			fmt.Sprintf("%v\r%v", item.Phone, item.Email),
			item.Job,
			string(item.Status),
			string(item.Source),
			item.AppliedDate,
			item.InterviewDate,
			item.Notes,
		)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	if err = w.applyDataStyle(); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	f.SetSheetName(sheet, "Кандидаты")
	return f.WriteToBuffer()
}

func (i impl) WriteApplicantList(exportDir string, list []applicantapimodels.ApplicantView) (string, error) {
	buf, err := i.ExportApplicantList(list)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(exportDir, 0o755); err != nil {
		return "", errors.Wrap(err, "ошибка создания каталога выгрузок")
	}
	fileName := fmt.Sprintf("Applicants_%s.xlsx", time.Now().Format(applicantapimodels.DateFormat))
	filePath := filepath.Join(exportDir, fileName)
	if err = os.WriteFile(filePath, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrap(err, "ошибка записи xlsx файла")
	}
	return filePath, nil
}
