package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/stochlab/internal/engine"
)

func observe(m engine.Metric, values ...float64) {
	for _, v := range values {
		m.Observe(engine.PathPoint{Value: v})
	}
}

func TestRealizedVolFlatPath(t *testing.T) {
	m := NewRealizedVol(1.0 / 252)
	observe(m, 100, 100, 100, 100)

	if m.Value() != 0 {
		t.Errorf("expected zero realized vol on a flat path, got %f", m.Value())
	}
}

func TestRealizedVolConstantReturns(t *testing.T) {
	m := NewRealizedVol(1.0 / 252)
	// constant log returns have zero dispersion
	observe(m, 100, 101, 102.01, 103.0301)

	if math.Abs(m.Value()) > 1e-9 {
		t.Errorf("expected zero dispersion, got %f", m.Value())
	}
}

func TestRealizedVolAlternating(t *testing.T) {
	dt := 1.0 / 252
	m := NewRealizedVol(dt)
	observe(m, 100, 110, 100, 110, 100)

	// log returns alternate between +r and -r with r = ln(1.1)
	r := math.Log(1.1)
	want := r / math.Sqrt(dt)
	if math.Abs(m.Value()-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, m.Value())
	}
}

func TestMaxDrawdown(t *testing.T) {
	m := NewMaxDrawdown()
	observe(m, 100, 120, 90, 110, 80)

	want := (120.0 - 80.0) / 120.0
	if math.Abs(m.Value()-want) > 1e-12 {
		t.Errorf("expected drawdown %f, got %f", want, m.Value())
	}
}

func TestMaxDrawdownMonotoneRise(t *testing.T) {
	m := NewMaxDrawdown()
	observe(m, 100, 105, 110, 120)

	if m.Value() != 0 {
		t.Errorf("expected zero drawdown, got %f", m.Value())
	}
}

func TestTerminal(t *testing.T) {
	m := NewTerminal()
	observe(m, 100, 105, 97.5)

	if m.Value() != 97.5 {
		t.Errorf("expected 97.5, got %f", m.Value())
	}
}

func TestReset(t *testing.T) {
	for _, m := range []engine.Metric{NewRealizedVol(1.0 / 252), NewMaxDrawdown(), NewTerminal()} {
		observe(m, 100, 90, 110)
		m.Reset()
		if m.Value() != 0 {
			t.Errorf("%s: expected zero after reset, got %f", m.Name(), m.Value())
		}
	}
}
