// Package viz renders a live terminal telemetry view of a descent: altitude
// and descent-rate traces plus throttle, fuel and parachute readouts.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/lander/internal/lander"
	"github.com/san-kum/lander/internal/sim"
)

const (
	graphWidth      = 70
	graphHeight     = 8
	historyCapacity = 600
)

type TickMsg time.Time

// Model is the bubbletea model driving one simulated descent.
type Model struct {
	simulator *sim.Simulator
	cfg       sim.Config
	state     *lander.State

	description   string
	t             float64
	stepsPerFrame int
	frameRate     int

	running bool
	done    bool
	outcome sim.Outcome

	altHistory  []float64
	rateHistory []float64
}

// NewModel wires a scenario state to the telemetry view. stepsPerFrame trades
// simulated speed against display smoothness.
func NewModel(state *lander.State, env lander.Environment, cfg sim.Config, description string, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 30
	}
	return Model{
		simulator:     sim.New(env),
		cfg:           cfg,
		state:         state,
		description:   description,
		stepsPerFrame: 10,
		frameRate:     frameRate,
		running:       true,
		altHistory:    make([]float64, 0, historyCapacity),
		rateHistory:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+":
			m.stepsPerFrame *= 2
		case "-":
			if m.stepsPerFrame > 1 {
				m.stepsPerFrame /= 2
			}
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			for i := 0; i < m.stepsPerFrame && !m.done; i++ {
				outcome, down := m.simulator.Tick(m.state, m.cfg)
				m.t += m.state.Dt
				if down || !m.state.IsValid() {
					m.done = true
					m.outcome = outcome
				}
			}
			m.altHistory = appendCapped(m.altHistory, m.state.Altitude())
			m.rateHistory = appendCapped(m.rateHistory, m.state.DescentRate())
		}
		return m, m.tick()
	}
	return m, nil
}

func appendCapped(h []float64, v float64) []float64 {
	if len(h) >= historyCapacity {
		h = h[1:]
	}
	return append(h, v)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("lander — %s", m.description)))
	b.WriteString("\n")

	stats := []string{
		row("time", fmt.Sprintf("%.1f s", m.t)),
		row("altitude", fmt.Sprintf("%.1f m", m.state.Altitude())),
		row("descent rate", fmt.Sprintf("%.2f m/s", m.state.DescentRate())),
		row("speed", fmt.Sprintf("%.2f m/s", m.state.Velocity.Abs())),
		row("throttle", fmt.Sprintf("%.0f %%", m.state.Throttle*100)),
		row("fuel", fmt.Sprintf("%.0f %%", m.state.Fuel*100)),
		row("parachute", m.state.Parachute.String()),
	}
	if m.done {
		style := landedStyle
		if m.outcome == sim.Crashed {
			style = crashedStyle
		}
		stats = append(stats, row("outcome", style.Render(m.outcome.String())))
	}
	b.WriteString(statsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, stats...)))
	b.WriteString("\n")

	if len(m.altHistory) > 1 {
		graph := asciigraph.Plot(m.altHistory,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("altitude (m)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}
	if len(m.rateHistory) > 1 {
		graph := asciigraph.Plot(m.rateHistory,
			asciigraph.Height(graphHeight),
			asciigraph.Width(graphWidth),
			asciigraph.Caption("descent rate (m/s)"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · +/- speed · q quit"))
	return b.String()
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}
