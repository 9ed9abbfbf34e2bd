package models

type SettingCode string

const (
	DefaultStatusSetting      SettingCode = "default_status"
	IndeedApiKeySetting       SettingCode = "indeed_api_key"
	ZipRecruiterApiKeySetting SettingCode = "ziprecruiter_api_key"
	LinkedInApiKeySetting     SettingCode = "linkedin_api_key"
	MonsterApiKeySetting      SettingCode = "monster_api_key"
)

type JobBoard struct {
	Name        string
	KeySetting  SettingCode
	NeedsApiKey bool
	NeedsOAuth  bool
}

// Список площадок для импорта кандидатов,
// пока поддерживается только ручная настройка ключей.
var JobBoards = []JobBoard{
	{Name: "Indeed", KeySetting: IndeedApiKeySetting, NeedsApiKey: true},
	{Name: "ZipRecruiter", KeySetting: ZipRecruiterApiKeySetting, NeedsApiKey: true},
	{Name: "LinkedIn", KeySetting: LinkedInApiKeySetting, NeedsOAuth: true},
	{Name: "Monster", KeySetting: MonsterApiKeySetting, NeedsApiKey: true},
}

func JobBoardByKeySetting(code SettingCode) (JobBoard, bool) {
	for _, board := range JobBoards {
		if board.KeySetting == code {
			return board, true
		}
	}
	return JobBoard{}, false
}
