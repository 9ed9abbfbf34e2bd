package applicantstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-ats/models"
	applicantapimodels "hr-ats/models/api/applicant"
	dbmodels "hr-ats/models/db"
)

type Provider interface {
	Create(rec dbmodels.Applicant) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Applicant, err error)
	List(filter dbmodels.ApplicantFilter) (list []dbmodels.Applicant, err error)
	Iterate(filter dbmodels.ApplicantFilter, batchSize int, fn func(rec dbmodels.Applicant) error) error
	Delete(id string) error
	Count() (count int64, err error)
	CountByStatus() (list []applicantapimodels.StatusCount, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Applicant) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Applicant{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.Wrap(models.ErrNotFound, "кандидат не найден")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List(filter dbmodels.ApplicantFilter) (list []dbmodels.Applicant, err error) {
	list = []dbmodels.Applicant{}
	tx := i.db.
		Model(dbmodels.Applicant{}).
		Order("applied_date desc")
	i.addFilter(tx, filter)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

// Iterate обходит кандидатов пачками, не загружая весь список в память.
// Обход конечный и перезапускаемый, останавливается на первой ошибке fn.
func (i impl) Iterate(filter dbmodels.ApplicantFilter, batchSize int, fn func(rec dbmodels.Applicant) error) error {
	if batchSize <= 0 {
		batchSize = 100
	}
	batch := []dbmodels.Applicant{}
	tx := i.db.
		Model(&dbmodels.Applicant{}).
		Order("applied_date desc")
	i.addFilter(tx, filter)
	result := tx.FindInBatches(&batch, batchSize, func(_ *gorm.DB, _ int) error {
		for _, rec := range batch {
			if err := fn(rec); err != nil {
				return err
			}
		}
		return nil
	})
	return result.Error
}

// Delete удаляет кандидата вместе с историей действий по нему.
func (i impl) Delete(id string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("id = ?", id).
			Delete(&dbmodels.Applicant{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.Wrap(models.ErrNotFound, "кандидат не найден")
		}
		return tx.
			Where("applicant_id = ?", id).
			Delete(&dbmodels.ApplicantHistory{}).
			Error
	})
}

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Applicant{}).
		Count(&count).
		Error
	return count, err
}

func (i impl) CountByStatus() (list []applicantapimodels.StatusCount, err error) {
	list = []applicantapimodels.StatusCount{}
	err = i.db.
		Model(&dbmodels.Applicant{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.ApplicantFilter) {
	if filter.Status != nil {
		tx.Where("status = ?", *filter.Status)
	}
	if filter.AppliedFrom != nil {
		tx.Where("applied_date >= ?", *filter.AppliedFrom)
	}
	if filter.InterviewFrom != nil {
		tx.Where("interview_date >= ?", *filter.InterviewFrom)
	}
	if filter.InterviewBefore != nil {
		tx.Where("interview_date <= ?", *filter.InterviewBefore)
	}
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(name) like ? or LOWER(email) like ? or phone like ? or LOWER(job) like ?",
			searchValue, searchValue, searchValue, searchValue)
	}
}
