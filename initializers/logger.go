package initializers

import (
	"os"

	log "github.com/sirupsen/logrus"
	"hr-ats/config"
)

// InitLogger пишет лог в файл, терминал занят интерфейсом приложения
func InitLogger() {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	level, err := log.ParseLevel(config.Conf.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	logFile, err := os.OpenFile(config.Conf.Log.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithError(err).Error("не удалось открыть файл лога, лог пишется в stderr")
		return
	}
	log.SetOutput(logFile)
}
