package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	pickerItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2)
	pickerSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	pickerHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// pickerModel is a minimal list selector shown when `animate` is invoked
// without a scene argument.
type pickerModel struct {
	items    []string
	cursor   int
	chosen   string
	canceled bool
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter", " ":
			m.chosen = m.items[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render("pick a scene") + "\n"
	for i, item := range m.items {
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+item) + "\n"
		} else {
			s += pickerItemStyle.Render(item) + "\n"
		}
	}
	s += pickerHelpStyle.Render("enter: run  q: quit") + "\n"
	return s
}

// pickScene runs the selector and returns the chosen scene name, or ""
// when the user backs out.
func pickScene(names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}
	p := tea.NewProgram(pickerModel{items: names})
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m := final.(pickerModel)
	if m.canceled {
		return "", nil
	}
	return m.chosen, nil
}
