package applicanthistoryhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ats/db"
	applicanthistorystore "hr-ats/lib/applicant-history/store"
	applicantapimodels "hr-ats/models/api/applicant"
	dbmodels "hr-ats/models/db"
)

type Provider interface {
	List(applicantID string) ([]applicantapimodels.ApplicantHistoryView, int64, error)
	Save(applicantID string, action dbmodels.ActionType, changes dbmodels.ApplicantChanges)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: applicanthistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store applicanthistorystore.Provider
}

func (i impl) List(applicantID string) ([]applicantapimodels.ApplicantHistoryView, int64, error) {
	rowCount, err := i.store.ListCount(applicantID)
	if err != nil {
		return nil, 0, err
	}
	list, err := i.store.List(applicantID)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка действий")
		return nil, 0, errors.New("ошибка получения списка действий")
	}
	result := make([]applicantapimodels.ApplicantHistoryView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.ApplicantHistoryView{
			ID:          rec.ID,
			Date:        rec.CreatedAt,
			ActionType:  rec.ActionType,
			Description: rec.Changes.Description,
			Data:        rec.Changes.Data,
		})
	}
	return result, rowCount, nil
}

// Save пишет запись истории, ошибка не прерывает основную операцию.
func (i impl) Save(applicantID string, action dbmodels.ActionType, changes dbmodels.ApplicantChanges) {
	rec := dbmodels.ApplicantHistory{
		ApplicantID: applicantID,
		ActionType:  action,
		Changes:     changes,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		log.WithError(err).
			WithField("applicant_id", applicantID).
			WithField("action", action).
			Error("ошибка сохранения истории действий по кандидату")
	}
}
