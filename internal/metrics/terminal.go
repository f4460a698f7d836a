package metrics

import "github.com/san-kum/stochlab/internal/engine"

// Terminal records the last displayed value of the path.
type Terminal struct {
	last float64
}

func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Name() string { return "terminal_value" }

func (t *Terminal) Observe(pt engine.PathPoint) { t.last = pt.Value }

func (t *Terminal) Value() float64 { return t.last }

func (t *Terminal) Reset() { t.last = 0 }
