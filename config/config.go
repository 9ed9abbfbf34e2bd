package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ExportDir string `default:"export" env:"APP_EXPORT_DIR"`
	}
	Database struct {
		FilePath       string `default:"hr_ats.db" env:"DB_FILE_PATH"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Log struct {
		FilePath string `default:"hr_ats.log" env:"LOG_FILE_PATH"`
		Level    string `default:"info" env:"LOG_LEVEL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
