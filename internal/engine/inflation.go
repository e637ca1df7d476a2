package engine

import "math"

// CPIGrowth returns the monthly price growth for the current unemployment
// rate. The full-employment counter accelerates inflation the longer the
// economy stays at zero idle workers: each consecutive period shrinks the
// effective unemployment input by another factor of ten. Off full employment
// the input is floored at 1% so the logit stays finite.
func CPIGrowth(unemployment float64, fullEmpCounter int) float64 {
	var adj float64
	if fullEmpCounter > 0 {
		adj = 0.01 * math.Pow(10, -float64(fullEmpCounter))
	} else {
		adj = math.Max(0.01, unemployment)
	}
	logit := math.Log(adj / (1 - adj))
	annualized := -logit / 100
	return annualized / 12
}

// NextCPI applies one month's growth to a price index.
func NextCPI(current, growth float64) float64 {
	return current * (1 + growth)
}
