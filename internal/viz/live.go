// Package viz renders a synthesized path in the terminal, replaying it
// point by point at a fixed frame rate.
package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stochlab/internal/engine"
)

const (
	graphHeight = 14
	graphWidth  = 80
)

type TickMsg time.Time

// Model replays a completed run. The engine loop stays untouched; the
// view only reveals points that are already computed.
type Model struct {
	result *engine.Result
	values []float64
	shown  int
	fps    int
	done   bool
}

func NewModel(result *engine.Result, fps int) Model {
	values := make([]float64, len(result.Path))
	for i, pt := range result.Path {
		values[i] = pt.Value
	}
	if fps <= 0 {
		fps = 30
	}
	return Model{result: result, values: values, shown: 1, fps: fps}
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
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case TickMsg:
		if m.shown < len(m.values) {
			m.shown++
			return m, m.tick()
		}
		m.done = true
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.values) == 0 {
		return "no path\n"
	}

	graph := asciigraph.Plot(m.values[:m.shown],
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("%s / %s", m.result.Params.Model, m.result.Params.Asset)),
	)

	pt := m.result.Path[m.shown-1]
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("step", fmt.Sprintf("%d / %d", pt.Index, m.result.Params.Steps))
	row("date", pt.Date.Format("2006-01-02"))
	row("value", fmt.Sprintf("%.4f", pt.Value))
	row("underlying", fmt.Sprintf("%.4f", pt.Underlying))
	row("benchmark", fmt.Sprintf("%.4f", pt.Benchmark))
	if pt.Greeks != nil {
		row("delta", fmt.Sprintf("%.4f", pt.Greeks.Delta))
		row("gamma", fmt.Sprintf("%.6f", pt.Greeks.Gamma))
		row("vega", fmt.Sprintf("%.4f", pt.Greeks.Vega))
		row("theta", fmt.Sprintf("%.4f", pt.Greeks.Theta))
		row("rho", fmt.Sprintf("%.4f", pt.Greeks.Rho))
	}
	if m.done {
		s := m.result.Summary
		row("min / max", fmt.Sprintf("%.4f / %.4f", s.Min, s.Max))
		row("mean", fmt.Sprintf("%.4f", s.Mean))
		row("stddev", fmt.Sprintf("%.4f", s.StdDev))
	}

	return headerStyle.Render("stochlab") + "\n" +
		graphStyle.Render(graph) + "\n" +
		statsStyle.Render(b.String()) +
		helpStyle.Render("q: quit")
}

// Run replays the result in an interactive terminal program.
func Run(result *engine.Result, fps int) error {
	p := tea.NewProgram(NewModel(result, fps))
	_, err := p.Run()
	return err
}
