package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

type ApplicantHistory struct {
	BaseModel
	ApplicantID string           `gorm:"type:varchar(36);index"`
	ActionType  ActionType       `gorm:"type:varchar(255)"`
	Changes     ApplicantChanges `gorm:"type:json"`
}

func (j ApplicantChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ApplicantChanges) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	}
	return errors.Errorf("неожиданный тип значения: %T", value)
}

type ApplicantChanges struct {
	Description string            `json:"description"` // Комментарий
	Data        []ApplicantChange `json:"data"`        // Список изменений
}

type ApplicantChange struct {
	Field    string      `json:"field"`     // Измененное поле
	OldValue interface{} `json:"old_value"` // Старое значение
	NewValue interface{} `json:"new_value"` // Новое значение
}

type ActionType string

const (
	HistoryTypeAdded        ActionType = "added"         // Кандидат добавлен
	HistoryTypeImport       ActionType = "import"        // Кандидат добавлен импортом
	HistoryTypeUpdate       ActionType = "update"        // Кандидат обновлен
	HistoryTypeStatusChange ActionType = "status_change" // Кандидат переведен в другой статус
	HistoryTypeInterview    ActionType = "interview"     // Назначено собеседование
	HistoryTypeComment      ActionType = "comment"       // Добавлен комментарий к кандидату
	HistoryTypeEmail        ActionType = "email"         // Подготовлено письмо кандидату
)
