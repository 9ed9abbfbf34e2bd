package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// inputForm - набор текстовых полей с переключением фокуса по Tab,
// submit вызывается по Enter на последнем поле или по Ctrl+S.
type inputForm struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
	submit func(values []string) tea.Cmd
}

func newInputForm(title string, fields []formField, submit func(values []string) tea.Cmd) *inputForm {
	form := &inputForm{
		title:  title,
		submit: submit,
	}
	for idx, field := range fields {
		input := textinput.New()
		input.Placeholder = field.placeholder
		input.SetValue(field.value)
		input.CharLimit = 256
		input.Width = 48
		if idx == 0 {
			input.Focus()
		}
		form.labels = append(form.labels, field.label)
		form.inputs = append(form.inputs, input)
	}
	return form
}

type formField struct {
	label       string
	placeholder string
	value       string
}

func (f *inputForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return nil
		case "ctrl+s":
			return f.submit(f.values())
		case "enter":
			if f.focus == len(f.inputs)-1 {
				return f.submit(f.values())
			}
			f.setFocus(f.focus + 1)
			return nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *inputForm) setFocus(focus int) {
	if focus < 0 {
		focus = len(f.inputs) - 1
	}
	if focus >= len(f.inputs) {
		focus = 0
	}
	f.inputs[f.focus].Blur()
	f.focus = focus
	f.inputs[f.focus].Focus()
}

func (f *inputForm) values() []string {
	result := make([]string, 0, len(f.inputs))
	for _, input := range f.inputs {
		result = append(result, strings.TrimSpace(input.Value()))
	}
	return result
}

func (f *inputForm) View() string {
	rows := []string{titleStyle.Render(f.title), ""}
	for idx, input := range f.inputs {
		rows = append(rows, labelStyle.Render(f.labels[idx]), input.View())
	}
	rows = append(rows, "", footerStyle.Render("Enter/Ctrl+S - сохранить    Esc - отмена"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
