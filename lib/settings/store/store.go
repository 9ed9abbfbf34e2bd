package settingsstore

import (
	"errors"

	"gorm.io/gorm"
	"hr-ats/models"
	dbmodels "hr-ats/models/db"
)

type Provider interface {
	Create(rec dbmodels.Setting) error
	Update(code models.SettingCode, value string) error
	List() (settingsList []dbmodels.Setting, err error)
	GetValueByCode(code models.SettingCode) (value string, err error)
	Delete(code models.SettingCode) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Setting) error {
	return i.db.
		Save(&rec).
		Error
}

func (i impl) GetValueByCode(code models.SettingCode) (value string, err error) {
	err = i.db.Model(dbmodels.Setting{}).
		Select("value").
		Where("code = ?", code).
		First(&value).
		Error
	if err != nil {
		return "", err
	}
	return value, nil
}

func (i impl) List() (settingsList []dbmodels.Setting, err error) {
	err = i.db.Model(dbmodels.Setting{}).
		Find(&settingsList).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return settingsList, nil
}

func (i impl) Update(code models.SettingCode, value string) error {
	updMap := map[string]interface{}{
		"value": value,
	}
	return i.db.
		Model(&dbmodels.Setting{}).
		Where("code = ?", code).
		Updates(updMap).
		Error
}

func (i impl) Delete(code models.SettingCode) error {
	rec := dbmodels.Setting{}
	err := i.db.
		Where("code = ?", code).
		Delete(&rec).
		Error

	if err != nil {
		return err
	}
	return nil
}
