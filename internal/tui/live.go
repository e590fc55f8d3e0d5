package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/stencilbench/internal/bench"
	"github.com/san-kum/stencilbench/internal/compute"
	"github.com/san-kum/stencilbench/internal/grid"
	"github.com/san-kum/stencilbench/internal/jacobi"
)

const (
	viewCols = 64
	viewRows = 24
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	fieldStyle  = lipgloss.NewStyle().Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var shades = []rune(" .:-=+*#%@")

type TickMsg time.Time

// Model steps an f64 Jacobi solver on ticks and renders the heat field as
// a character ramp. Space pauses, r reseeds, q quits.
type Model struct {
	solver   *jacobi.Solver[float64]
	pair     *grid.Pair[float64]
	strat    compute.Strategy
	n, m     int
	boundary float64
	fps      int
	running  bool
	lastPass time.Duration
}

func NewModel(n, m int, boundary float64, fps int, strat compute.Strategy) (Model, error) {
	pair, err := grid.NewPair[float64](n, m)
	if err != nil {
		return Model{}, err
	}
	pair.Seed(boundary)

	return Model{
		solver:   jacobi.New(pair, strat),
		pair:     pair,
		strat:    strat,
		n:        n,
		m:        m,
		boundary: boundary,
		fps:      fps,
		running:  true,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
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
		case "r":
			m.pair.Seed(m.boundary)
			m.solver = jacobi.New(m.pair, m.strat)
			m.lastPass = 0
		}
	case TickMsg:
		if m.running {
			start := time.Now()
			if err := m.solver.Step(); err != nil {
				return m, tea.Quit
			}
			m.lastPass = time.Since(start)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	field := m.renderField()

	mlups := 0.0
	if us := float64(m.lastPass.Nanoseconds()) / 1e3; us > 0 {
		mlups = float64(bench.LatticeUpdates(m.n, m.m, 1)) / us
	}

	status := "running"
	if !m.running {
		status = "paused"
	}

	stats := strings.Join([]string{
		labelStyle.Render("backend") + valueStyle.Render(m.strat.Name()),
		labelStyle.Render("grid") + valueStyle.Render(fmt.Sprintf("%dx%d", m.n, m.m)),
		labelStyle.Render("iteration") + valueStyle.Render(fmt.Sprintf("%d", m.solver.Steps())),
		labelStyle.Render("pass mlups") + valueStyle.Render(fmt.Sprintf("%.3f", mlups)),
		labelStyle.Render("status") + valueStyle.Render(status),
	}, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("stencilbench live"),
		lipgloss.JoinHorizontal(lipgloss.Top, fieldStyle.Render(field), fieldStyle.Render(stats)),
		helpStyle.Render("space pause  r reseed  q quit"),
	)
}

func (m Model) renderField() string {
	g := m.solver.Final()

	rows := m.n
	if rows > viewRows {
		rows = viewRows
	}
	cols := m.m
	if cols > viewCols {
		cols = viewCols
	}

	scale := m.boundary
	if scale <= 0 {
		scale = 1
	}

	var b strings.Builder
	for r := 0; r < rows; r++ {
		i := r * (m.n - 1) / max(rows-1, 1)
		for c := 0; c < cols; c++ {
			j := c * (m.m - 1) / max(cols-1, 1)
			v := g.At(i, j) / scale
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			b.WriteRune(shades[int(v*float64(len(shades)-1))])
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run starts the live view and blocks until the user quits.
func Run(n, m int, boundary float64, fps int, strat compute.Strategy) error {
	model, err := NewModel(n, m, boundary, fps, strat)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	_, err = p.Run()
	return err
}
