package models

import (
	"github.com/pkg/errors"
)

type ApplicantStatus string

// Этапы воронки подбора.
// Hired и Rejected - финальные, возврат из них не предусмотрен
// (повторное открытие кандидата - продуктовое решение, не реализуем).
const (
	ApplicantStatusApplied   ApplicantStatus = "Applied"
	ApplicantStatusScreening ApplicantStatus = "Screening"
	ApplicantStatusInterview ApplicantStatus = "Interview"
	ApplicantStatusOffer     ApplicantStatus = "Offer"
	ApplicantStatusHired     ApplicantStatus = "Hired"
	ApplicantStatusRejected  ApplicantStatus = "Rejected"
)

var ApplicantStatuses = []ApplicantStatus{
	ApplicantStatusApplied,
	ApplicantStatusScreening,
	ApplicantStatusInterview,
	ApplicantStatusOffer,
	ApplicantStatusHired,
	ApplicantStatusRejected,
}

func (s ApplicantStatus) IsValid() bool {
	for _, status := range ApplicantStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (s ApplicantStatus) IsTerminal() bool {
	return s == ApplicantStatusHired || s == ApplicantStatusRejected
}

// CheckStatusChange проверяет допустимость перевода кандидата в новый статус.
// Возвращает changed = false для повторной установки текущего статуса.
func CheckStatusChange(current, next ApplicantStatus) (changed bool, err error) {
	if !next.IsValid() {
		return false, errors.Wrapf(ErrValidation, "неизвестный статус (%v)", next)
	}
	if current == next {
		return false, nil
	}
	if current.IsTerminal() {
		return false, errors.Wrapf(ErrInvalidTransition, "кандидат уже в финальном статусе (%v)", current)
	}
	return true, nil
}

type ApplicantSource string

const (
	ApplicantSourceManual ApplicantSource = "Manual"
	ApplicantSourceCsv    ApplicantSource = "CSV Import"
)
