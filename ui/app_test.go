package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyMsg(value string) tea.KeyMsg {
	switch value {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func TestApp(t *testing.T) {
	t.Run(`отрисовка вкладок`, func(t *testing.T) {
		app := NewApp()
		model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		view := model.(*App).View()
		require.Contains(t, view, "Дашборд")
		require.Contains(t, view, "Кандидаты")
		require.Contains(t, view, "Шаблоны")
		require.Contains(t, view, "Настройки")
	})

	t.Run(`переключение вкладок по цифрам`, func(t *testing.T) {
		app := NewApp()
		app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

		app.Update(keyMsg("2"))
		require.Equal(t, screenApplicants, app.screen)

		app.Update(keyMsg("3"))
		require.Equal(t, screenTemplates, app.screen)

		app.Update(keyMsg("4"))
		require.Equal(t, screenSettings, app.screen)

		app.Update(keyMsg("1"))
		require.Equal(t, screenDashboard, app.screen)
	})

	t.Run(`форма кандидата открывается и закрывается`, func(t *testing.T) {
		app := NewApp()
		app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		app.Update(keyMsg("2"))

		app.Update(keyMsg("n"))
		require.Equal(t, screenForm, app.screen)
		require.NotNil(t, app.form)
		require.Contains(t, app.View(), "Новый кандидат")

		app.Update(keyMsg("esc"))
		require.Equal(t, screenApplicants, app.screen)
		require.Nil(t, app.form)
	})

	t.Run(`результат операции показывается в футере`, func(t *testing.T) {
		app := NewApp()
		app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		app.Update(opDoneMsg{status: "Кандидат добавлен"})
		require.Contains(t, app.View(), "Кандидат добавлен")
	})

	t.Run(`ошибка операции показывается в футере`, func(t *testing.T) {
		app := NewApp()
		app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
		app.Update(opDoneMsg{err: errors.New("тестовая ошибка")})
		require.Contains(t, app.View(), "тестовая ошибка")
	})
}
