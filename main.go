package main

import (
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"hr-ats/initializers"
	"hr-ats/ui"
)

func main() {
	initializers.InitAllServices()

	log.Info("приложение запущено")
	program := tea.NewProgram(ui.NewApp(), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.WithError(err).Fatal("ошибка работы интерфейса")
	}
	log.Info("приложение остановлено")
}
