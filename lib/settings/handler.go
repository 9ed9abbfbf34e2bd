package settings

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-ats/db"
	settingsstore "hr-ats/lib/settings/store"
	"hr-ats/models"
	settingapimodels "hr-ats/models/api/setting"
	dbmodels "hr-ats/models/db"
)

type Provider interface {
	List() (list []settingapimodels.SettingView, err error)
	GetValue(code models.SettingCode) (value string, err error)
	Update(code models.SettingCode, value string) error
	GetDefaultStatus() models.ApplicantStatus
	TestJobBoard(code models.SettingCode) (result string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: settingsstore.NewInstance(db.DB),
	}
}

type impl struct {
	store settingsstore.Provider
}

func (i impl) List() (list []settingapimodels.SettingView, err error) {
	recList, err := i.store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка настроек")
		return nil, err
	}
	for _, rec := range recList {
		list = append(list, rec.ToModelView())
	}
	return list, nil
}

func (i impl) GetValue(code models.SettingCode) (value string, err error) {
	value, err = i.store.GetValueByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (i impl) Update(code models.SettingCode, value string) error {
	if _, ok := dbmodels.DefaultSettingsMap[code]; !ok {
		return errors.Wrapf(models.ErrValidation, "неизвестный код настройки (%v)", code)
	}
	if code == models.DefaultStatusSetting && !models.ApplicantStatus(value).IsValid() {
		return errors.Wrapf(models.ErrValidation, "неизвестный статус (%v)", value)
	}
	return i.store.Update(code, value)
}

// GetDefaultStatus возвращает статус для новых кандидатов,
// при отсутствии или порче настройки - Applied.
func (i impl) GetDefaultStatus() models.ApplicantStatus {
	value, err := i.GetValue(models.DefaultStatusSetting)
	if err != nil {
		log.WithError(err).Error("ошибка получения статуса по умолчанию из настроек")
		return models.ApplicantStatusApplied
	}
	status := models.ApplicantStatus(value)
	if !status.IsValid() {
		return models.ApplicantStatusApplied
	}
	return status
}

// TestJobBoard проверяет настройку подключения к площадке.
// Реального вызова API площадки нет, проверяется только наличие ключа.
func (i impl) TestJobBoard(code models.SettingCode) (result string, err error) {
	board, ok := models.JobBoardByKeySetting(code)
	if !ok {
		return "", errors.Wrapf(models.ErrValidation, "настройка не относится к площадке (%v)", code)
	}
	value, err := i.GetValue(code)
	if err != nil {
		log.WithError(err).
			WithField("board", board.Name).
			Error("ошибка получения ключа площадки")
		return "", err
	}
	if value == "" && board.NeedsApiKey {
		return "", errors.Wrapf(models.ErrValidation, "не задан api_key для %s", board.Name)
	}
	keyState := "ключ задан"
	if value == "" && board.NeedsOAuth {
		keyState = "oauth токен не задан"
	}
	return fmt.Sprintf("%s: %s, подключение: имитация успеха", board.Name, keyState), nil
}
