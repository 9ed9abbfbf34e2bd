package pdfexport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	applicantapimodels "hr-ats/models/api/applicant"
)

func TestPdfExport(t *testing.T) {
	t.Run(`формирование оффера`, func(t *testing.T) {
		view := applicantapimodels.ApplicantView{
			ApplicantData: applicantapimodels.ApplicantData{
				Name: "Ada Lovelace",
				Job:  "Engineer",
			},
		}
		body, err := GenerateOffer(view)
		require.Nil(t, err)
		require.NotEmpty(t, body)
		require.Equal(t, "%PDF", string(body[:4]))
	})

	t.Run(`оффер без имени или вакансии`, func(t *testing.T) {
		_, err := GenerateOffer(applicantapimodels.ApplicantView{})
		require.NotNil(t, err)

		view := applicantapimodels.ApplicantView{
			ApplicantData: applicantapimodels.ApplicantData{Name: "Ada Lovelace"},
		}
		_, err = GenerateOffer(view)
		require.NotNil(t, err)
	})

	t.Run(`сохранение оффера в каталог выгрузок`, func(t *testing.T) {
		exportDir := filepath.Join(t.TempDir(), "export")
		view := applicantapimodels.ApplicantView{
			ApplicantData: applicantapimodels.ApplicantData{
				Name: "Ada Lovelace",
				Job:  "Engineer",
			},
		}
		filePath, err := WriteOffer(exportDir, view)
		require.Nil(t, err)
		require.Contains(t, filepath.Base(filePath), "Offer_Ada_Lovelace_")

		body, err := os.ReadFile(filePath)
		require.Nil(t, err)
		require.Equal(t, "%PDF", string(body[:4]))
	})
}
