package metrics

import "github.com/san-kum/stochlab/internal/engine"

// MaxDrawdown is the largest peak-to-trough decline of the displayed
// values, as a fraction of the running peak.
type MaxDrawdown struct {
	peak  float64
	worst float64
}

func NewMaxDrawdown() *MaxDrawdown {
	return &MaxDrawdown{}
}

func (m *MaxDrawdown) Name() string { return "max_drawdown" }

func (m *MaxDrawdown) Observe(pt engine.PathPoint) {
	if pt.Value > m.peak {
		m.peak = pt.Value
	}
	if m.peak > 0 {
		dd := (m.peak - pt.Value) / m.peak
		if dd > m.worst {
			m.worst = dd
		}
	}
}

func (m *MaxDrawdown) Value() float64 { return m.worst }

func (m *MaxDrawdown) Reset() {
	m.peak = 0
	m.worst = 0
}
