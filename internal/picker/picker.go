// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runctl/runctl/internal/target"
)

var (
	cursorStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// Select presents a filterable list of targets and returns the chosen name,
// or "" if the user backed out.
func Select(targets []target.Target) (string, error) {
	p := tea.NewProgram(initialModel(targets))
	m, err := p.Run()
	if err != nil {
		return "", err
	}
	return m.(model).selected, nil
}

type model struct {
	filter   textinput.Model
	targets  []target.Target
	cursor   int
	selected string
}

func initialModel(targets []target.Target) model {
	ti := textinput.New()
	ti.Placeholder = "filter targets"
	ti.Focus()
	ti.Prompt = "> "

	return model{
		filter:  ti,
		targets: targets,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// visible returns the targets whose name or usage contains the filter text.
func (m model) visible() []target.Target {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if needle == "" {
		return m.targets
	}
	var out []target.Target
	for _, t := range m.targets {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.Usage), needle) {
			out = append(out, t)
		}
	}
	return out
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.selected = ""
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			visible := m.visible()
			if m.cursor < len(visible) {
				m.selected = visible[m.cursor].Name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.cursor >= len(m.visible()) {
		m.cursor = 0
	}
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	for i, t := range m.visible() {
		line := fmt.Sprintf("%s  %s", t.Name, dimStyle.Render(t.Usage))
		if i == m.cursor {
			line = cursorStyle.Render("» " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(dimStyle.Render("\nenter to run, esc to quit\n"))
	return b.String()
}
