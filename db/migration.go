package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-ats/models/db"
)

func AutoMigrateDB() error {
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Applicant")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicantHistory{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры ApplicantHistory")
	}
	if err := DB.AutoMigrate(&dbmodels.EmailTemplate{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры EmailTemplate")
	}
	if err := DB.AutoMigrate(&dbmodels.Setting{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Setting")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
