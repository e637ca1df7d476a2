package engine

import "math"

// LoanPayment returns the fixed monthly payment that amortizes principal over
// the given term at the given annual percentage rate. A zero principal, rate,
// or term yields 0, which callers treat as "skip repayment this period".
func LoanPayment(principal, annualRatePct float64, years int) float64 {
	n := float64(years * 12)
	r := (annualRatePct / 100) / 12
	if principal <= 0 || r == 0 || n == 0 {
		return 0
	}
	growth := math.Pow(1+r, n)
	return r * principal * growth / (growth - 1)
}
