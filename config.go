package main

// DefaultParams returns the stock garden constants. A garden file may
// override any of them under "params".
func DefaultParams() Params {
	return Params{
		SurviveProb: 0.5,
		TierUp:      [3]float64{0.4, 0.3, 0.2},
		TierValue:   [4]float64{10, 25, 60, 150},
		RefPurple:   120,
		RefBlue:     90,
		RefYellow:   60,
	}
}

// Verbose controls whether solve progress is printed to stderr.
var Verbose bool
