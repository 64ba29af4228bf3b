package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(9)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	fieldType = iota
	fieldValue
)

type inspectModel struct {
	err    error
	report *report
	inputs []textinput.Model
	focus  int
}

func newInspectModel() *inspectModel {
	typ := textinput.New()
	typ.Prompt = "type:  "
	typ.Placeholder = "Uz12"
	typ.CharLimit = 4
	typ.Width = 10
	typ.Focus()

	val := textinput.New()
	val.Prompt = "value: "
	val.Placeholder = "0xfff"
	val.Width = 24

	return &inspectModel{inputs: []textinput.Model{typ, val}}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down", "enter":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			return m, m.inputs[m.focus].Focus()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.refresh()
	return m, cmd
}

// refresh re-renders the current input. Nothing is shown until both
// fields have text.
func (m *inspectModel) refresh() {
	m.report, m.err = nil, nil
	typ := m.inputs[fieldType].Value()
	val := m.inputs[fieldValue].Value()
	if strings.TrimSpace(typ) == "" || strings.TrimSpace(val) == "" {
		return
	}

	r, err := inspect(typ, val)
	if err != nil {
		m.err = err
		return
	}
	m.report = &r
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("uz inspector"))
	b.WriteString("\n\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.report != nil:
		r := m.report
		rows := [][2]string{
			{"type", r.Desc.Name + " (" + describe(r.Desc) + ")"},
			{"debug", r.Debug},
			{"display", r.Display},
			{"hex", r.Hex},
			{"wit", r.WIT},
		}
		for _, row := range rows {
			b.WriteString(labelStyle.Render(row[0]))
			b.WriteString(resultStyle.Render(row[1]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab switch field • esc quit"))
	return b.String()
}
