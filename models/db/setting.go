package dbmodels

import (
	"hr-ats/models"
	settingapimodels "hr-ats/models/api/setting"
)

type Setting struct {
	BaseModel
	Name  string             `gorm:"type:varchar(255)"`
	Code  models.SettingCode `gorm:"type:varchar(255);uniqueIndex"`
	Value string             `gorm:"type:varchar(500)"`
}

func (r Setting) ToModelView() settingapimodels.SettingView {
	return settingapimodels.SettingView{
		ID:    r.ID,
		Name:  r.Name,
		Code:  r.Code,
		Value: r.Value,
	}
}

var DefaultStatusSetting = Setting{
	Name:  "статус новых кандидатов",
	Code:  models.DefaultStatusSetting,
	Value: string(models.ApplicantStatusApplied),
}

var DefaultIndeedApiKeySetting = Setting{
	Name: "api_key для Indeed",
	Code: models.IndeedApiKeySetting,
}

var DefaultZipRecruiterApiKeySetting = Setting{
	Name: "api_key для ZipRecruiter",
	Code: models.ZipRecruiterApiKeySetting,
}

var DefaultLinkedInApiKeySetting = Setting{
	Name: "oauth токен для LinkedIn",
	Code: models.LinkedInApiKeySetting,
}

var DefaultMonsterApiKeySetting = Setting{
	Name: "api_key для Monster",
	Code: models.MonsterApiKeySetting,
}

var DefaultSettingsMap = map[models.SettingCode]Setting{
	models.DefaultStatusSetting:      DefaultStatusSetting,
	models.IndeedApiKeySetting:       DefaultIndeedApiKeySetting,
	models.ZipRecruiterApiKeySetting: DefaultZipRecruiterApiKeySetting,
	models.LinkedInApiKeySetting:     DefaultLinkedInApiKeySetting,
	models.MonsterApiKeySetting:      DefaultMonsterApiKeySetting,
}
