package csvimport

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"hr-ats/db"
	"hr-ats/lib/applicant"
	applicanthistoryhandler "hr-ats/lib/applicant-history"
	"hr-ats/models"
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

func TestCsvImport(t *testing.T) {
	t.Run(`импорт валидного файла`, func(t *testing.T) {
		setupTest(t)
		data := "Name,Email,Phone,Job Title,Applied Date,Notes\n" +
			"Ada Lovelace,ada@example.com,555-0101,Engineer,2026-08-01,strong profile\n" +
			"Grace Hopper,grace@example.com,,Developer,2026-08-10,\n"
		result, err := Instance.ImportReader(strings.NewReader(data))
		require.Nil(t, err)
		require.Equal(t, 2, result.Added)
		require.Equal(t, 0, len(result.RowErrors))

		list, err := applicant.Instance.List(dbmodels.ApplicantFilter{})
		require.Nil(t, err)
		require.Equal(t, 2, len(list))
		for _, view := range list {
			require.Equal(t, models.ApplicantSourceCsv, view.Source)
		}
	})

	t.Run(`битые строки пропускаются, импорт продолжается`, func(t *testing.T) {
		setupTest(t)
		data := "Name,Email,Applied Date\n" +
			"Ada Lovelace,ada@example.com,2026-08-01\n" +
			",noname@example.com,2026-08-02\n" +
			"Bad Date,bad@example.com,01/08/2026\n" +
			"Grace Hopper,grace@example.com,2026-08-10\n"
		result, err := Instance.ImportReader(strings.NewReader(data))
		require.Nil(t, err)
		require.Equal(t, 2, result.Added)
		require.Equal(t, 2, len(result.RowErrors))
		require.Equal(t, 3, result.RowErrors[0].Row)
		require.Equal(t, 4, result.RowErrors[1].Row)
	})

	t.Run(`подбор колонок по подстроке заголовка`, func(t *testing.T) {
		setupTest(t)
		data := "Full Name,Contact,Position Title\n" +
			"Ada Lovelace,ada@example.com,Engineer\n"
		result, err := Instance.ImportReader(strings.NewReader(data))
		require.Nil(t, err)
		require.Equal(t, 1, result.Added)

		list, err := applicant.Instance.List(dbmodels.ApplicantFilter{})
		require.Nil(t, err)
		require.Equal(t, "ada@example.com", list[0].Email)
		require.Equal(t, "Engineer", list[0].Job)
	})

	t.Run(`пустой файл`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.ImportReader(strings.NewReader(""))
		require.NotNil(t, err)
	})

	t.Run(`файл не найден`, func(t *testing.T) {
		setupTest(t)
		_, err := Instance.ImportFile("missing.csv")
		require.NotNil(t, err)
	})

	t.Run(`строки импорта попадают в историю с типом import`, func(t *testing.T) {
		setupTest(t)
		data := "Name\nAda Lovelace\n"
		result, err := Instance.ImportReader(strings.NewReader(data))
		require.Nil(t, err)
		require.Equal(t, 1, result.Added)

		list, err := applicant.Instance.List(dbmodels.ApplicantFilter{})
		require.Nil(t, err)
		history, _, err := applicanthistoryhandler.Instance.List(list[0].ID)
		require.Nil(t, err)
		require.Equal(t, 1, len(history))
		require.Equal(t, dbmodels.HistoryTypeImport, history[0].ActionType)
	})
}
