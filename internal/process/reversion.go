package process

import "math"

// levelFloor keeps the square-root diffusion well-defined as the level
// approaches zero.
const levelFloor = 1e-8

// LinearReverting is the Vasicek-style update. The level may go
// negative; no floor is applied.
type LinearReverting struct {
	speed  float64
	target float64
	vol    float64
}

func NewLinearReverting(c Coeffs) *LinearReverting {
	return &LinearReverting{speed: c.Speed, target: c.Target, vol: c.Volatility}
}

func (l *LinearReverting) Step(level, shock, dt float64) float64 {
	return level + l.speed*(l.target-level)*dt + l.vol*math.Sqrt(dt)*shock
}

// SquareRootReverting is the CIR-style update. The level is floored at a
// small epsilon before use, so the diffusion term vanishes as the level
// approaches zero and the process stays non-negative in well-behaved
// parameter regimes.
type SquareRootReverting struct {
	speed  float64
	target float64
	vol    float64
}

func NewSquareRootReverting(c Coeffs) *SquareRootReverting {
	return &SquareRootReverting{speed: c.Speed, target: c.Target, vol: c.Volatility}
}

func (s *SquareRootReverting) Step(level, shock, dt float64) float64 {
	floored := math.Max(level, levelFloor)
	return floored + s.speed*(s.target-floored)*dt + s.vol*math.Sqrt(floored)*math.Sqrt(dt)*shock
}

// DriftingReverting adds an explicit drift term on top of linear
// reversion. It backs both the equilibrium and structural variants.
type DriftingReverting struct {
	drift  float64
	speed  float64
	target float64
	vol    float64
}

func NewDriftingReverting(c Coeffs) *DriftingReverting {
	return &DriftingReverting{drift: c.Drift, speed: c.Speed, target: c.Target, vol: c.Volatility}
}

func (d *DriftingReverting) Step(level, shock, dt float64) float64 {
	return level + d.drift*dt + d.speed*(d.target-level)*dt + d.vol*math.Sqrt(dt)*shock
}
