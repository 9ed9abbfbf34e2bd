package settings

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"hr-ats/db"
	"hr-ats/models"
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
	db.InitPreload()
	NewHandler()
}

func TestSettingsHandler(t *testing.T) {
	t.Run(`предзаполнение настроек`, func(t *testing.T) {
		setupTest(t)
		list, err := Instance.List()
		require.Nil(t, err)
		require.Equal(t, 5, len(list))

		value, err := Instance.GetValue(models.DefaultStatusSetting)
		require.Nil(t, err)
		require.Equal(t, string(models.ApplicantStatusApplied), value)
	})

	t.Run(`повторное предзаполнение не перетирает значения`, func(t *testing.T) {
		setupTest(t)
		require.Nil(t, Instance.Update(models.DefaultStatusSetting, string(models.ApplicantStatusScreening)))
		db.InitPreload()

		value, err := Instance.GetValue(models.DefaultStatusSetting)
		require.Nil(t, err)
		require.Equal(t, string(models.ApplicantStatusScreening), value)
	})

	t.Run(`обновление статуса по умолчанию`, func(t *testing.T) {
		setupTest(t)
		require.Nil(t, Instance.Update(models.DefaultStatusSetting, string(models.ApplicantStatusOffer)))
		require.Equal(t, models.ApplicantStatusOffer, Instance.GetDefaultStatus())
	})

	t.Run(`неизвестный статус по умолчанию`, func(t *testing.T) {
		setupTest(t)
		err := Instance.Update(models.DefaultStatusSetting, "Unknown")
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrValidation))
	})

	t.Run(`неизвестный код настройки`, func(t *testing.T) {
		setupTest(t)
		err := Instance.Update(models.SettingCode("missing_code"), "value")
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrValidation))
	})

	t.Run(`ключи площадок`, func(t *testing.T) {
		setupTest(t)
		require.Nil(t, Instance.Update(models.IndeedApiKeySetting, "key-123"))
		value, err := Instance.GetValue(models.IndeedApiKeySetting)
		require.Nil(t, err)
		require.Equal(t, "key-123", value)
	})

	t.Run(`проверка подключения площадки`, func(t *testing.T) {
		setupTest(t)
		// без ключа подключение к Indeed не проверяется
		_, err := Instance.TestJobBoard(models.IndeedApiKeySetting)
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrValidation))

		require.Nil(t, Instance.Update(models.IndeedApiKeySetting, "key-123"))
		result, err := Instance.TestJobBoard(models.IndeedApiKeySetting)
		require.Nil(t, err)
		require.Contains(t, result, "Indeed")

		// LinkedIn работает по oauth, отсутствие ключа не ошибка
		result, err = Instance.TestJobBoard(models.LinkedInApiKeySetting)
		require.Nil(t, err)
		require.Contains(t, result, "oauth токен не задан")

		// настройка не площадки
		_, err = Instance.TestJobBoard(models.DefaultStatusSetting)
		require.NotNil(t, err)
		require.Equal(t, true, errors.Is(err, models.ErrValidation))
	})
}
