package analytics

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"hr-ats/db"
	"hr-ats/lib/applicant"
	applicanthistoryhandler "hr-ats/lib/applicant-history"
	xlsexport "hr-ats/lib/export/xls"
	"hr-ats/models"
	applicantapimodels "hr-ats/models/api/applicant"
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
	xlsexport.NewHandler()
	NewHandler()
}

func TestAnalytics(t *testing.T) {
	t.Run(`дашборд по кандидатам`, func(t *testing.T) {
		setupTest(t)
		id1, err := applicant.Instance.Create(applicantapimodels.ApplicantData{Name: "Ada Lovelace"})
		require.Nil(t, err)
		id2, err := applicant.Instance.Create(applicantapimodels.ApplicantData{Name: "Grace Hopper"})
		require.Nil(t, err)
		require.Nil(t, applicant.Instance.UpdateStatus(id2, models.ApplicantStatusInterview))

		// собеседование через 3 дня попадает в ближайшие, через 30 - нет
		require.Nil(t, applicant.Instance.ScheduleInterview(id2, time.Now().AddDate(0, 0, 3)))
		require.Nil(t, applicant.Instance.ScheduleInterview(id1, time.Now().AddDate(0, 0, 30)))

		// кандидат с давним откликом не попадает в недавние
		_, err = applicant.Instance.Create(applicantapimodels.ApplicantData{
			Name:        "Old Applicant",
			AppliedDate: time.Now().AddDate(0, 0, -30).Format(applicantapimodels.DateFormat),
		})
		require.Nil(t, err)

		data, err := Instance.Dashboard()
		require.Nil(t, err)
		require.Equal(t, int64(3), data.Total)

		byStatus := map[models.ApplicantStatus]int64{}
		for _, rec := range data.StatusCounts {
			byStatus[rec.Status] = rec.Count
		}
		require.Equal(t, int64(2), byStatus[models.ApplicantStatusApplied])
		require.Equal(t, int64(1), byStatus[models.ApplicantStatusInterview])

		require.Equal(t, 1, len(data.Upcoming))
		require.Equal(t, id2, data.Upcoming[0].ID)

		require.Equal(t, 2, len(data.Recent))
	})

	t.Run(`дашборд без кандидатов`, func(t *testing.T) {
		setupTest(t)
		data, err := Instance.Dashboard()
		require.Nil(t, err)
		require.Equal(t, int64(0), data.Total)
		require.Equal(t, 0, len(data.Upcoming))
		require.Equal(t, 0, len(data.Recent))
	})

	t.Run(`выгрузка списка в xlsx`, func(t *testing.T) {
		setupTest(t)
		_, err := applicant.Instance.Create(applicantapimodels.ApplicantData{Name: "Ada Lovelace"})
		require.Nil(t, err)

		buf, err := Instance.ExportToXls(dbmodels.ApplicantFilter{})
		require.Nil(t, err)
		require.NotEqual(t, 0, buf.Len())
	})
}
