// Package ui provides the interactive template picker shown when
// generate is invoked without a template id.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rulebook-dev/rulebook/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "205", Dark: "205"})

	appStyle = lipgloss.NewStyle().Margin(1, 2)
)

// pickerModel wraps a bubbles list over the library's templates.
type pickerModel struct {
	list     list.Model
	selected *models.Template
	quitting bool
}

func newPickerModel(templates []*models.Template) pickerModel {
	items := make([]list.Item, len(templates))
	for i, tmpl := range templates {
		items[i] = *tmpl
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "Select a guidance template"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if tmpl, ok := m.list.SelectedItem().(models.Template); ok {
				m.selected = &tmpl
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}
	return appStyle.Render(m.list.View())
}

// PickTemplate runs the picker and returns the chosen template, or nil
// when the user cancels.
func PickTemplate(templates []*models.Template) (*models.Template, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("no templates in library")
	}

	program := tea.NewProgram(newPickerModel(templates), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok {
		return nil, fmt.Errorf("unexpected picker state")
	}
	return m.selected, nil
}
