package applicanthistoryhandler

import (
	"fmt"
	"reflect"
	"time"

	"hr-ats/lib/utils/helpers"
	applicantapimodels "hr-ats/models/api/applicant"
	dbmodels "hr-ats/models/db"
)

// служебные поля, не попадающие в историю изменений
var ignoreFields = map[string]bool{
	"base_model": true,
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"status":     true,
}

func GetCreateChanges(descr string, rec dbmodels.Applicant) dbmodels.ApplicantChanges {
	result := dbmodels.ApplicantChanges{
		Description: descr,
		Data:        make([]dbmodels.ApplicantChange, 0),
	}
	rType := reflect.TypeOf(rec)
	vType := reflect.ValueOf(rec)
	for k := 0; k < rType.NumField(); k++ {
		field := rType.Field(k)
		fieldName := helpers.ToSnakeCase(field.Name)
		if ignoreFields[fieldName] {
			// пропускаем не нужные поля
			continue
		}
		if vType.Field(k).IsZero() {
			// пропускаем пустые поля
			continue
		}
		result.Data = append(result.Data, dbmodels.ApplicantChange{
			Field:    fieldName,
			OldValue: nil,
			NewValue: getValue(vType.Field(k).Interface()),
		})
	}
	return result
}

func GetUpdateChanges(oldRec, newRec dbmodels.Applicant) dbmodels.ApplicantChanges {
	result := dbmodels.ApplicantChanges{
		Description: "Данные кандидата обновлены",
		Data:        make([]dbmodels.ApplicantChange, 0),
	}
	rType := reflect.TypeOf(oldRec)
	oldV := reflect.ValueOf(oldRec)
	newV := reflect.ValueOf(newRec)
	for k := 0; k < rType.NumField(); k++ {
		fieldName := helpers.ToSnakeCase(rType.Field(k).Name)
		if ignoreFields[fieldName] {
			continue
		}
		if reflect.DeepEqual(oldV.Field(k).Interface(), newV.Field(k).Interface()) {
			continue
		}
		result.Data = append(result.Data, dbmodels.ApplicantChange{
			Field:    fieldName,
			OldValue: getValue(oldV.Field(k).Interface()),
			NewValue: getValue(newV.Field(k).Interface()),
		})
	}
	return result
}

func GetStatusChange(oldStatus, newStatus interface{}) dbmodels.ApplicantChanges {
	return dbmodels.ApplicantChanges{
		Description: fmt.Sprintf("Перевод в статус %v", newStatus),
		Data: []dbmodels.ApplicantChange{
			{
				Field:    "status",
				OldValue: getValue(oldStatus),
				NewValue: getValue(newStatus),
			},
		},
	}
}

func GetInterviewChange(oldDate *time.Time, newDate time.Time) dbmodels.ApplicantChanges {
	var oldValue interface{}
	if oldDate != nil {
		oldValue = oldDate.Format(applicantapimodels.DateFormat)
	}
	return dbmodels.ApplicantChanges{
		Description: fmt.Sprintf("Назначено собеседование на %v", newDate.Format(applicantapimodels.DateFormat)),
		Data: []dbmodels.ApplicantChange{
			{
				Field:    "interview_date",
				OldValue: oldValue,
				NewValue: newDate.Format(applicantapimodels.DateFormat),
			},
		},
	}
}

func GetCommentChange(oldNotes, newNotes string) dbmodels.ApplicantChanges {
	return dbmodels.ApplicantChanges{
		Description: "Обновлены заметки по кандидату",
		Data: []dbmodels.ApplicantChange{
			{
				Field:    "notes",
				OldValue: oldNotes,
				NewValue: newNotes,
			},
		},
	}
}

func GetEmailChange(templateName string) dbmodels.ApplicantChanges {
	return dbmodels.ApplicantChanges{
		Description: fmt.Sprintf("Подготовлено письмо по шаблону %q", templateName),
	}
}

func getValue(value interface{}) interface{} {
	switch v := value.(type) {
	case time.Time:
		return v.Format(applicantapimodels.DateFormat)
	case *time.Time:
		if v == nil {
			return nil
		}
		return v.Format(applicantapimodels.DateFormat)
	case fmt.Stringer:
		return v.String()
	}
	return value
}
