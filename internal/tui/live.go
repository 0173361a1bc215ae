// Package tui is the interactive terminal front end: a live orbit view
// stepping the simulation in real time.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smahesh/orbitlab/internal/orbit"
	"github.com/smahesh/orbitlab/internal/viz"
)

const (
	viewCells   = 28
	trailLength = 400
	tickRate    = 16 * time.Millisecond
)

type Model struct {
	field  orbit.Central
	init   []orbit.Body
	bodies []orbit.Body
	dt     float64
	steps  int

	step   int
	simT   float64
	paused bool
	// Integration steps per render tick.
	speed int
	err   error

	view     *viz.OrbitView
	trails   [][]orbit.Vec2
	progress progress.Model

	width int
}

func NewModel(field orbit.Central, bodies []orbit.Body, dt float64, steps int) Model {
	initCopy := make([]orbit.Body, len(bodies))
	copy(initCopy, bodies)

	extent := 1.0
	for i := range bodies {
		if r := bodies[i].Pos.Norm(); r > extent {
			extent = r
		}
	}

	m := Model{
		field:    field,
		init:     initCopy,
		dt:       dt,
		steps:    steps,
		speed:    8,
		view:     viz.NewOrbitView(viewCells, extent*1.3),
		progress: progress.New(progress.WithDefaultGradient()),
		width:    80,
	}
	m.reset()
	return m
}

func (m *Model) reset() {
	m.bodies = make([]orbit.Body, len(m.init))
	copy(m.bodies, m.init)
	m.trails = make([][]orbit.Vec2, len(m.init))
	for i := range m.trails {
		m.trails[i] = make([]orbit.Vec2, 0, trailLength)
	}
	m.step = 0
	m.simT = 0
	m.err = nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "+", "=":
			if m.speed < 256 {
				m.speed *= 2
			}
		case "-":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "r":
			m.reset()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tickMsg:
		if !m.paused && m.err == nil && m.step < m.steps {
			m.advance()
		}
		return m, tick()
	}

	return m, nil
}

func (m *Model) advance() {
	for k := 0; k < m.speed && m.step < m.steps; k++ {
		for i := range m.bodies {
			if err := m.bodies[i].Step(m.field, m.dt); err != nil {
				m.err = &orbit.DomainError{Body: i, Step: m.step, Time: m.simT, Wrapped: err}
				return
			}
		}
		m.step++
		m.simT += m.dt
	}
	for i := range m.bodies {
		m.trails[i] = append(m.trails[i], m.bodies[i].Pos)
		if len(m.trails[i]) > trailLength {
			m.trails[i] = m.trails[i][1:]
		}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(viz.TitleStyle.Render("orbitlab"))
	b.WriteString("  ")
	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.err.Error()))
	} else if m.paused {
		b.WriteString(viz.StatusPaused.Render("paused"))
	} else if m.step >= m.steps {
		b.WriteString(viz.StatusRunning.Render("done"))
	} else {
		b.WriteString(viz.StatusRunning.Render("running"))
	}
	b.WriteString("\n\n")

	m.view.PlotBodies(m.bodies, m.trails)
	b.WriteString(viz.PanelStyle.Render(m.view.String()))
	b.WriteString("\n\n")

	frac := 0.0
	if m.steps > 0 {
		frac = float64(m.step) / float64(m.steps)
	}
	b.WriteString("  " + m.progress.ViewAs(frac) + "\n\n")

	energy := 0.0
	for i := range m.bodies {
		energy += m.bodies[i].Energy(m.field)
	}
	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		viz.MetricLabel.Render("t"),
		viz.MetricValue.Render(fmt.Sprintf("%.3f", m.simT)),
		viz.MetricLabel.Render("E"),
		viz.MetricValue.Render(fmt.Sprintf("%+.5f", energy)),
		viz.MetricLabel.Render("speed"),
		viz.MetricValue.Render(fmt.Sprintf("%dx", m.speed)),
	))

	b.WriteString("\n" + viz.KeyHint.Render("  space pause · +/- speed · r reset · q quit") + "\n")

	return b.String()
}

// RunLive drives the live view until the run finishes or the user quits.
func RunLive(field orbit.Central, bodies []orbit.Body, dt float64, steps int) error {
	p := tea.NewProgram(NewModel(field, bodies, dt, steps))
	_, err := p.Run()
	return err
}
