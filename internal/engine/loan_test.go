package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoanPayment(t *testing.T) {
	// 1000 at 4% APR over 5 years: 60 payments at a monthly rate of 1/3%.
	pmt := LoanPayment(1000, 4, 5)
	assert.InDelta(t, 18.41, pmt, 0.01)
}

func TestLoanPayment_Guards(t *testing.T) {
	assert.Zero(t, LoanPayment(0, 4, 5), "zero principal")
	assert.Zero(t, LoanPayment(-10, 4, 5), "negative principal")
	assert.Zero(t, LoanPayment(1000, 0, 5), "zero rate")
	assert.Zero(t, LoanPayment(1000, 4, 0), "zero term")
}

func TestLoanPayment_ScalesWithPrincipal(t *testing.T) {
	assert.InDelta(t, LoanPayment(1000, 4, 5)/200, LoanPayment(5, 4, 5), 1e-9)
}
