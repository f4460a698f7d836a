package engine

import "math"

// summarize computes descriptive statistics over the displayed values.
// Standard deviation is the population form.
func summarize(path []PathPoint) Summary {
	if len(path) == 0 {
		return Summary{}
	}

	s := Summary{Min: path[0].Value, Max: path[0].Value}
	sum := 0.0
	for _, pt := range path {
		sum += pt.Value
		if pt.Value < s.Min {
			s.Min = pt.Value
		}
		if pt.Value > s.Max {
			s.Max = pt.Value
		}
	}
	s.Mean = sum / float64(len(path))

	varSum := 0.0
	for _, pt := range path {
		d := pt.Value - s.Mean
		varSum += d * d
	}
	s.StdDev = math.Sqrt(varSum / float64(len(path)))
	return s
}
