package initializers

import (
	"hr-ats/config"
	"hr-ats/db"
)

func InitDBConnection() {
	err := db.Connect(config.Conf.Database.FilePath, *config.Conf.Database.DebugMode, *config.Conf.Database.MigrateOnStart)
	if err != nil {
		panic(err.Error())
	}

	db.InitPreload()
}
