package db

import (
	log "github.com/sirupsen/logrus"
	emailtemplatestore "hr-ats/lib/email-template/store"
	settingsstore "hr-ats/lib/settings/store"
	dbmodels "hr-ats/models/db"
)

func InitPreload() {
	fillSettings()
	fillEmailTemplates()
}

func fillSettings() {
	log.Info("предзаполнение дефолтных настроек")
	store := settingsstore.NewInstance(DB)
	existing, err := store.List()
	if err != nil {
		log.WithError(err).Error("ошибка получения настроек")
		return
	}
	existingCodes := map[string]bool{}
	for _, rec := range existing {
		existingCodes[string(rec.Code)] = true
	}
	for code, settingData := range dbmodels.DefaultSettingsMap {
		if existingCodes[string(code)] {
			continue
		}
		if err = store.Create(settingData); err != nil {
			log.WithError(err).
				WithField("setting_code", code).
				Error("ошибка добавления настройки")
		}
	}
	log.Info("предзаполнение дефолтных настроек завершено")
}

// fillEmailTemplates добавляет стартовые шаблоны, только если шаблонов еще нет,
// удаленные пользователем дефолтные шаблоны повторно не создаются
func fillEmailTemplates() {
	store := emailtemplatestore.NewInstance(DB)
	count, err := store.Count()
	if err != nil {
		log.WithError(err).Error("ошибка получения количества шаблонов письма")
		return
	}
	if count != 0 {
		return
	}
	log.Info("предзаполнение стартовых шаблонов письма")
	for _, rec := range dbmodels.DefaultTemplates {
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).
				WithField("template_name", rec.Name).
				Error("ошибка добавления шаблона письма")
		}
	}
}
