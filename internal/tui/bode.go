// Package tui provides an interactive terminal Bode explorer.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/daelab/internal/config"
	"github.com/san-kum/daelab/internal/dae"
	"github.com/san-kum/daelab/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	redBad = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	stateMenu = iota
	statePlot
)

type model struct {
	state  int
	cursor int

	presets []string
	system  *dae.System
	name    string

	spec       viz.SweepSpec
	output     int
	input      int
	errMsg     string
	width      int
	plotHeight int
}

// New builds the explorer over the named presets.
func New() tea.Model {
	return model{
		presets:    config.ListPresets(),
		spec:       viz.SweepSpec{StartExp: config.DefaultStartExp, EndExp: config.DefaultEndExp, Points: config.DefaultPoints},
		output:     1,
		input:      1,
		width:      80,
		plotHeight: 8,
	}
}

// Run starts the explorer and blocks until the user quits.
func Run() error {
	_, err := tea.NewProgram(New(), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateMenu {
		return m.menuKey(msg)
	}
	return m.plotKey(msg)
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		name := m.presets[m.cursor]
		cfg := config.GetPreset(name)
		sys, err := cfg.Build()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.name = name
		m.system = sys
		m.spec = viz.SweepSpec{StartExp: cfg.Sweep.StartExp, EndExp: cfg.Sweep.EndExp, Points: cfg.Sweep.Points}
		m.output, m.input = 1, 1
		m.errMsg = ""
		m.state = statePlot
	}
	return m, nil
}

func (m model) plotKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "backspace":
		m.state = stateMenu
		return m, nil
	case "left", "h":
		m.spec.StartExp--
		m.spec.EndExp--
	case "right", "l":
		m.spec.StartExp++
		m.spec.EndExp++
	case "+", "=":
		m.spec.EndExp++
	case "-", "_":
		if m.spec.EndExp-1 > m.spec.StartExp {
			m.spec.EndExp--
		}
	case "[":
		if m.spec.Points > 50 {
			m.spec.Points -= 50
		}
	case "]":
		m.spec.Points += 50
	case "tab":
		m.input++
		if m.input > m.system.NumInputs() {
			m.input = 1
			m.output++
			if m.output > m.system.NumOutputs() {
				m.output = 1
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.state == stateMenu {
		return m.menuView()
	}
	return m.plotView()
}

func (m model) menuView() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render("daelab — linear DAE frequency explorer"))
	sb.WriteString("\n\n")

	for i, name := range m.presets {
		cfg := config.GetPreset(name)
		cursor := "  "
		style := white
		if i == m.cursor {
			cursor = "> "
			style = yellow
		}
		sb.WriteString(cursor + style.Render(name) + dim.Render("  "+cfg.Label) + "\n")
	}
	if m.errMsg != "" {
		sb.WriteString("\n" + redBad.Render(m.errMsg) + "\n")
	}
	sb.WriteString("\n" + dim.Render("up/down select · enter plot · q quit"))
	return sb.String()
}

func (m model) plotView() string {
	var sb strings.Builder

	status := fmt.Sprintf("%s  [%s]  ", m.name, m.system.Label())
	if m.system.IsRegular() {
		status += green.Render("regular")
	} else {
		status += redBad.Render("not regular")
	}
	if m.system.IsODE() {
		status += green.Render(" · ODE")
	}
	sb.WriteString(cyan.Render(status))
	sb.WriteByte('\n')

	if !m.system.IsRegular() {
		sb.WriteString("\n" + redBad.Render("transfer function undefined; no Bode plot") + "\n")
		sb.WriteString("\n" + white.Render(m.system.String()) + "\n")
		sb.WriteString(dim.Render("esc back · q quit"))
		return sb.String()
	}

	bp := viz.NewBodePlot()
	if err := bp.AddSystem(m.system, viz.LineStyle{Color: "cyan"}); err != nil {
		sb.WriteString(redBad.Render(err.Error()))
	} else {
		width := m.width - 12
		if width < 30 {
			width = 30
		}
		panel, err := bp.Panel(m.spec, m.output, m.input, width, m.plotHeight)
		if err != nil {
			sb.WriteString(redBad.Render(err.Error()))
		} else {
			sb.WriteString(panel)
		}
	}

	sb.WriteByte('\n')
	sb.WriteString(dim.Render(fmt.Sprintf("decades %g..%g · %d pts · pair %d/%d",
		m.spec.StartExp, m.spec.EndExp, m.spec.Points, m.output, m.input)))
	sb.WriteByte('\n')
	sb.WriteString(dim.Render("←/→ shift · +/- span · [/] points · tab pair · esc back · q quit"))
	return sb.String()
}
