package cpplc

import "math"

// CostModel selects how accumulated load inflates per-distance cost.
type CostModel uint8

const (
	// Linear inflates cost proportionally to the load fraction.
	Linear CostModel = iota
	// Quadratic inflates cost with the squared load fraction, punishing
	// near-full trips harder.
	Quadratic
	// Piecewise applies stepped rates at one-third load-fraction tiers.
	Piecewise
	// Fuel approximates fuel burn as a sublinear power of gross weight
	// over a 50-unit tare.
	Fuel
)

// String implements fmt.Stringer.
func (m CostModel) String() string {
	switch m {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Piecewise:
		return "piecewise"
	case Fuel:
		return "fuel"
	default:
		return "unknown"
	}
}

// Apply returns the cost of covering distance d while carrying load under
// the given capacity.
func (m CostModel) Apply(d, load, capacity float64) float64 {
	frac := load / capacity

	switch m {
	case Quadratic:
		return d * (1 + 0.8*frac*frac)
	case Piecewise:
		r := 1.0
		switch {
		case frac < 1.0/3.0:
			r = 0.2
		case frac < 2.0/3.0:
			r = 0.5
		}
		return d * (1 + r*frac)
	case Fuel:
		return d * math.Pow((50+load)/50, 0.8)
	default:
		return d * (1 + 0.5*frac)
	}
}
