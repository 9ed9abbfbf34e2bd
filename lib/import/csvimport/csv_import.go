package csvimport

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ats/lib/applicant"
	initchecker "hr-ats/lib/utils/init-checker"
	"hr-ats/models"
	applicantapimodels "hr-ats/models/api/applicant"
)

type Provider interface {
	ImportFile(filePath string) (result applicantapimodels.ImportResult, err error)
	ImportReader(r io.Reader) (result applicantapimodels.ImportResult, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		applicantProvider: applicant.Instance,
	}
	initchecker.CheckInit(
		"applicantProvider", instance.applicantProvider,
	)
	Instance = instance
}

type impl struct {
	applicantProvider applicant.Provider
}

func (i impl) ImportFile(filePath string) (applicantapimodels.ImportResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return applicantapimodels.ImportResult{}, errors.Wrap(err, "ошибка открытия csv файла")
	}
	defer f.Close()
	return i.ImportReader(f)
}

// ImportReader добавляет кандидатов построчно.
// Строка без имени или с некорректными данными пропускается и попадает в отчет,
// импорт при этом продолжается до конца файла.
func (i impl) ImportReader(r io.Reader) (result applicantapimodels.ImportResult, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return result, errors.Wrap(err, "ошибка чтения заголовка csv файла")
	}
	columns := mapColumns(header)
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			result.RowErrors = append(result.RowErrors, applicantapimodels.ImportRowError{
				Row:   row,
				Error: err.Error(),
			})
			continue
		}
		data := columns.toApplicantData(record)
		_, err = i.applicantProvider.Create(data)
		if err != nil {
			log.WithError(err).
				WithField("row", row).
				Warn("строка импорта пропущена")
			result.RowErrors = append(result.RowErrors, applicantapimodels.ImportRowError{
				Row:   row,
				Error: err.Error(),
			})
			continue
		}
		result.Added++
	}
	return result, nil
}

type columnMap struct {
	nameIdx  int
	emailIdx int
	phoneIdx int
	jobIdx   int
	notesIdx int
	dateIdx  int
}

// mapColumns подбирает колонки по подстроке в заголовке,
// точные названия колонок во внешних выгрузках не стандартизованы
func mapColumns(header []string) columnMap {
	result := columnMap{nameIdx: -1, emailIdx: -1, phoneIdx: -1, jobIdx: -1, notesIdx: -1, dateIdx: -1}
	for idx, value := range header {
		h := strings.ToLower(strings.TrimSpace(value))
		switch {
		case result.nameIdx == -1 && strings.Contains(h, "name"):
			result.nameIdx = idx
		case result.emailIdx == -1 && (strings.Contains(h, "email") || strings.Contains(h, "contact")):
			result.emailIdx = idx
		case result.phoneIdx == -1 && strings.Contains(h, "phone"):
			result.phoneIdx = idx
		case result.jobIdx == -1 && (strings.Contains(h, "job") || strings.Contains(h, "title")):
			result.jobIdx = idx
		case result.notesIdx == -1 && strings.Contains(h, "note"):
			result.notesIdx = idx
		case result.dateIdx == -1 && (strings.Contains(h, "date") || strings.Contains(h, "applied")):
			result.dateIdx = idx
		}
	}
	return result
}

func (c columnMap) toApplicantData(record []string) applicantapimodels.ApplicantData {
	return applicantapimodels.ApplicantData{
		Name:        getColumn(record, c.nameIdx),
		Email:       getColumn(record, c.emailIdx),
		Phone:       getColumn(record, c.phoneIdx),
		Job:         getColumn(record, c.jobIdx),
		Notes:       getColumn(record, c.notesIdx),
		AppliedDate: getColumn(record, c.dateIdx),
		Source:      models.ApplicantSourceCsv,
	}
}

func getColumn(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
