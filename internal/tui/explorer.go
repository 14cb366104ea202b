// Package tui is an interactive terminal explorer for one scene: adjust
// the force magnitude and watch per-body stress respond.
package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/strukt-dev/strukt/internal/colormap"
	"github.com/strukt-dev/strukt/internal/stress"
	"github.com/strukt-dev/strukt/internal/structure"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

const barWidth = 40

type model struct {
	name      string
	bodies    []structure.Body
	engine    *stress.Engine
	force     stress.Force
	initial   float64
	step      float64
	res       *stress.Result
	termWidth int
}

func newModel(name string, bodies []structure.Body, f stress.Force, engine *stress.Engine) model {
	m := model{
		name:    name,
		bodies:  bodies,
		engine:  engine,
		force:   f,
		initial: f.Magnitude,
		step:    0.1,
	}
	m.res = engine.Run(bodies, m.force)
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=", "up", "k":
			m.force.Magnitude += m.step
		case "-", "down", "j":
			m.force.Magnitude = math.Max(0, m.force.Magnitude-m.step)
		case "]":
			m.step *= 10
		case "[":
			m.step = math.Max(0.001, m.step/10)
		case "r":
			m.force.Magnitude = m.initial
		default:
			return m, nil
		}
		m.res = m.engine.Run(m.bodies, m.force)
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("strukt · "+m.name) + "\n\n")
	sb.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n\n",
		labelStyle.Render("magnitude"),
		valueStyle.Render(fmt.Sprintf("%.3f", m.force.Magnitude)),
		labelStyle.Render("step"),
		valueStyle.Render(fmt.Sprintf("%.3f", m.step)),
		labelStyle.Render("failed"),
		valueStyle.Render(fmt.Sprintf("%d/%d", m.res.FailedBodies, m.res.TotalBodies)),
	))

	for i := range m.bodies {
		bs := m.res.PerBody[i]
		sb.WriteString(m.bodyRow(i, bs))
	}

	sb.WriteString(helpStyle.Render("+/- magnitude · [/] step · r reset · q quit"))
	return sb.String()
}

func (m model) bodyRow(i int, bs stress.BodyStress) string {
	// Bar length saturates at ratio 2, matching the point-field cap.
	filled := int(math.Min(bs.Ratio, 2) / 2 * barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	barStyle := lipgloss.NewStyle().Foreground(colormap.Terminal(bs.Ratio, bs.Failed))

	status := ""
	if bs.Failed {
		status = " " + failStyle.Render("FAILED")
	}
	return fmt.Sprintf("%2d %-9s %s %s%s\n",
		i,
		m.bodies[i].Props.Kind.String(),
		barStyle.Render(bar),
		valueStyle.Render(fmt.Sprintf("%6.3f", bs.Ratio)),
		status,
	)
}

// Run starts the explorer and blocks until the user quits.
func Run(name string, bodies []structure.Body, f stress.Force, engine *stress.Engine) error {
	p := tea.NewProgram(newModel(name, bodies, f, engine))
	_, err := p.Run()
	return err
}
