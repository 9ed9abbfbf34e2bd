package emailtemplatestore

import (
	"errors"

	"gorm.io/gorm"
	dbmodels "hr-ats/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmailTemplate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.EmailTemplate, err error)
	GetByName(name string) (rec *dbmodels.EmailTemplate, err error)
	List() (list []dbmodels.EmailTemplate, err error)
	Delete(id string) error
	Count() (count int64, err error)
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (rec *dbmodels.EmailTemplate, err error) {
	err = i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetByName(name string) (rec *dbmodels.EmailTemplate, err error) {
	err = i.db.
		Where("name = ?", name).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) Create(rec dbmodels.EmailTemplate) (id string, err error) {
	err = i.db.Save(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.EmailTemplate{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) List() (list []dbmodels.EmailTemplate, err error) {
	err = i.db.
		Model(&dbmodels.EmailTemplate{}).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.EmailTemplate{}
	return i.db.
		Where("id = ?", id).
		Delete(&rec).
		Error
}

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.EmailTemplate{}).
		Count(&count).
		Error
	return count, err
}
