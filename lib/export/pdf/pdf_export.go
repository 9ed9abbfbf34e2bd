package pdfexport

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	applicantapimodels "hr-ats/models/api/applicant"
)

const offerBodyTemplate = "Dear {{.Name}},<br><br>" +
	"We are pleased to offer you the {{.Job}} position.<br><br>" +
	"We look forward to working with you!<br><br>" +
	"Date: {{.Date}}"

type offerTemplateData struct {
	Name string
	Job  string
	Date string
}

func GenerateOffer(applicant applicantapimodels.ApplicantView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateOffer panic recover: %v", r)
		}
	}()
	if applicant.Name == "" || applicant.Job == "" {
		return nil, errors.New("для оффера нужны имя кандидата и вакансия")
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 12, "Offer of Employment", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	_, lineHt := pdf.GetFontSize()

	tpl, err := template.New("offer_body").Parse(offerBodyTemplate)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	err = tpl.Execute(buf, offerTemplateData{
		Name: applicant.Name,
		Job:  applicant.Job,
		Date: time.Now().Format(applicantapimodels.DateFormat),
	})
	if err != nil {
		return nil, err
	}

	pdf.SetY(pdf.GetY() + 8)
	html := pdf.HTMLBasicNew()
	html.Write(lineHt+2, buf.String())

	buf = new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteOffer сохраняет оффер в каталог выгрузок и возвращает путь к файлу.
func WriteOffer(exportDir string, applicant applicantapimodels.ApplicantView) (filePath string, err error) {
	body, err := GenerateOffer(applicant)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(exportDir, 0o755); err != nil {
		return "", errors.Wrap(err, "ошибка создания каталога выгрузок")
	}
	fileName := fmt.Sprintf("Offer_%s_%s.pdf",
		strings.ReplaceAll(applicant.Name, " ", "_"),
		time.Now().Format(applicantapimodels.DateFormat))
	filePath = filepath.Join(exportDir, fileName)
	if err = os.WriteFile(filePath, body, 0o644); err != nil {
		return "", errors.Wrap(err, "ошибка записи pdf файла")
	}
	return filePath, nil
}
