package settingapimodels

import (
	"hr-ats/models"
)

type SettingView struct {
	ID    string             `json:"id"`    // Идентификатор настройки
	Name  string             `json:"name"`  // Описание настройки
	Code  models.SettingCode `json:"code"`  // Код настройки
	Value string             `json:"value"` // Значение
}
