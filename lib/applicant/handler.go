package applicant

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-ats/db"
	applicanthistoryhandler "hr-ats/lib/applicant-history"
	applicantstore "hr-ats/lib/applicant/store"
	settingsstore "hr-ats/lib/settings/store"
	initchecker "hr-ats/lib/utils/init-checker"
	"hr-ats/models"
	applicantapimodels "hr-ats/models/api/applicant"
	dbmodels "hr-ats/models/db"
)

type Provider interface {
	Create(data applicantapimodels.ApplicantData) (id string, err error)
	Update(id string, data applicantapimodels.ApplicantData) error
	GetByID(id string) (applicantapimodels.ApplicantView, error)
	List(filter dbmodels.ApplicantFilter) (list []applicantapimodels.ApplicantView, err error)
	Iterate(filter dbmodels.ApplicantFilter, fn func(view applicantapimodels.ApplicantView) error) error
	UpdateStatus(id string, status models.ApplicantStatus) error
	ScheduleInterview(id string, date time.Time) error
	UpdateNotes(id string, notes string) error
	Delete(id string) error
	Count() (count int64, err error)
	CountByStatus() (list []applicantapimodels.StatusCount, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:           applicantstore.NewInstance(db.DB),
		settingsStore:   settingsstore.NewInstance(db.DB),
		historyProvider: applicanthistoryhandler.Instance,
	}
	initchecker.CheckInit(
		"historyProvider", instance.historyProvider,
	)
	Instance = instance
}

type impl struct {
	store           applicantstore.Provider
	settingsStore   settingsstore.Provider
	historyProvider applicanthistoryhandler.Provider
}

func (i impl) Create(data applicantapimodels.ApplicantData) (id string, err error) {
	logger := log.WithField("applicant_name", data.Name)
	if err = data.Validate(); err != nil {
		return "", err
	}
	appliedDate, _ := data.GetAppliedDate()
	if appliedDate.IsZero() {
		appliedDate = time.Now()
	}
	source := data.Source
	if source == "" {
		source = models.ApplicantSourceManual
	}
	rec := dbmodels.Applicant{
		Name:        data.Name,
		Email:       data.Email,
		Phone:       data.Phone,
		Job:         data.Job,
		Notes:       data.Notes,
		Status:      i.defaultStatus(logger),
		Source:      source,
		AppliedDate: appliedDate,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка добавления кандидата")
		return "", errors.New("ошибка добавления кандидата")
	}
	action := dbmodels.HistoryTypeAdded
	descr := "Кандидат добавлен вручную"
	if source == models.ApplicantSourceCsv {
		action = dbmodels.HistoryTypeImport
		descr = "Кандидат добавлен импортом из CSV"
	}
	i.historyProvider.Save(id, action, applicanthistoryhandler.GetCreateChanges(descr, rec))
	return id, nil
}

// Update правит карточные поля кандидата, статус и собеседование
// меняются отдельными операциями.
func (i impl) Update(id string, data applicantapimodels.ApplicantData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "кандидат не найден")
	}
	upd := *rec
	upd.Name = data.Name
	upd.Email = data.Email
	upd.Phone = data.Phone
	upd.Job = data.Job
	upd.Notes = data.Notes
	appliedDate, _ := data.GetAppliedDate()
	if !appliedDate.IsZero() {
		upd.AppliedDate = appliedDate
	}
	changes := applicanthistoryhandler.GetUpdateChanges(*rec, upd)
	if len(changes.Data) == 0 {
		return nil
	}
	err = i.store.Update(id, map[string]interface{}{
		"name":         upd.Name,
		"email":        upd.Email,
		"phone":        upd.Phone,
		"job":          upd.Job,
		"notes":        upd.Notes,
		"applied_date": upd.AppliedDate,
	})
	if err != nil {
		return err
	}
	i.historyProvider.Save(id, dbmodels.HistoryTypeUpdate, changes)
	return nil
}

func (i impl) GetByID(id string) (applicantapimodels.ApplicantView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return applicantapimodels.ApplicantView{}, err
	}
	if rec == nil {
		return applicantapimodels.ApplicantView{}, errors.Wrap(models.ErrNotFound, "кандидат не найден")
	}
	return applicantapimodels.ApplicantConvert(*rec), nil
}

func (i impl) List(filter dbmodels.ApplicantFilter) ([]applicantapimodels.ApplicantView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]applicantapimodels.ApplicantView, 0, len(list))
	for _, rec := range list {
		result = append(result, applicantapimodels.ApplicantConvert(rec))
	}
	return result, nil
}

func (i impl) Iterate(filter dbmodels.ApplicantFilter, fn func(view applicantapimodels.ApplicantView) error) error {
	return i.store.Iterate(filter, 0, func(rec dbmodels.Applicant) error {
		return fn(applicantapimodels.ApplicantConvert(rec))
	})
}

func (i impl) UpdateStatus(id string, status models.ApplicantStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "кандидат не найден")
	}
	changed, err := rec.IsAllowStatusChange(status)
	if err != nil {
		return err
	}
	if !changed {
		// повторная установка текущего статуса - не ошибка
		return nil
	}
	updMap := map[string]interface{}{
		"status": status,
	}
	if status == models.ApplicantStatusHired {
		updMap["hired_date"] = time.Now()
	}
	err = i.store.Update(id, updMap)
	if err != nil {
		return err
	}
	i.historyProvider.Save(id, dbmodels.HistoryTypeStatusChange, applicanthistoryhandler.GetStatusChange(rec.Status, status))
	return nil
}

func (i impl) ScheduleInterview(id string, date time.Time) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "кандидат не найден")
	}
	err = i.store.Update(id, map[string]interface{}{
		"interview_date": date,
	})
	if err != nil {
		return err
	}
	i.historyProvider.Save(id, dbmodels.HistoryTypeInterview, applicanthistoryhandler.GetInterviewChange(rec.InterviewDate, date))
	return nil
}

func (i impl) UpdateNotes(id string, notes string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrap(models.ErrNotFound, "кандидат не найден")
	}
	if rec.Notes == notes {
		return nil
	}
	err = i.store.Update(id, map[string]interface{}{
		"notes": notes,
	})
	if err != nil {
		return err
	}
	i.historyProvider.Save(id, dbmodels.HistoryTypeComment, applicanthistoryhandler.GetCommentChange(rec.Notes, notes))
	return nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) Count() (int64, error) {
	return i.store.Count()
}

func (i impl) CountByStatus() ([]applicantapimodels.StatusCount, error) {
	return i.store.CountByStatus()
}

func (i impl) defaultStatus(logger *log.Entry) models.ApplicantStatus {
	value, err := i.settingsStore.GetValueByCode(models.DefaultStatusSetting)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.WithError(err).Error("ошибка получения статуса по умолчанию из настроек")
		}
		return models.ApplicantStatusApplied
	}
	status := models.ApplicantStatus(value)
	if !status.IsValid() {
		logger.WithField("value", value).Warn("в настройках указан неизвестный статус по умолчанию")
		return models.ApplicantStatusApplied
	}
	return status
}
