package applicanthistorystore

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	dbmodels "hr-ats/models/db"
)

type Provider interface {
	Create(rec dbmodels.ApplicantHistory) (id string, err error)
	ListCount(applicantID string) (count int64, err error)
	List(applicantID string) (list []dbmodels.ApplicantHistory, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApplicantHistory) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListCount(applicantID string) (count int64, err error) {
	var rowCount int64
	err = i.db.
		Model(dbmodels.ApplicantHistory{}).
		Where("applicant_id = ?", applicantID).
		Count(&rowCount).
		Error
	if err != nil {
		log.WithError(err).Error("ошибка получения общего количества действий по профилю кандидата")
		return 0, errors.New("ошибка получения общего количества действий по профилю кандидата")
	}
	return rowCount, nil
}

func (i impl) List(applicantID string) (list []dbmodels.ApplicantHistory, err error) {
	list = []dbmodels.ApplicantHistory{}
	err = i.db.
		Model(dbmodels.ApplicantHistory{}).
		Where("applicant_id = ?", applicantID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
