package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgersim-dev/ledgersim/internal/config"
	"github.com/ledgersim-dev/ledgersim/internal/economy"
	"github.com/ledgersim-dev/ledgersim/internal/model"
)

func newFiatEngine(t *testing.T) *Engine {
	t.Helper()
	cfg := config.Default()
	econ, err := economy.New(economy.ModeFiat, cfg)
	require.NoError(t, err)
	return New(econ, cfg)
}

func TestRunFiatPeriod_Deficit(t *testing.T) {
	g := newFiatEngine(t)
	// Annual deficit of 6 spends 0.5 per month into capitalists' hands.
	rec, err := g.RunFiatPeriod(-6)
	require.NoError(t, err)

	econ := g.Economy()
	treasury := econ.Sheet(model.ActorTreasury)
	assert.InDelta(t, -0.5, treasury.Balance(model.Key(model.CategoryAssets, economy.AcctCash)).InexactFloat64(), 1e-9)
	assert.InDelta(t, -0.5, treasury.Balance(model.Key(model.CategoryEquity, economy.AcctSpending)).InexactFloat64(), 1e-9)

	capitalists := econ.Sheet(model.ActorCapitalists)
	assert.InDelta(t, 0.5, capitalists.Balance(model.Key(model.CategoryAssets, economy.AcctCash)).InexactFloat64(), 1e-9)
	assert.InDelta(t, 0.5, capitalists.Balance(model.Key(model.CategoryLiabilities, economy.AcctGovtContracts)).InexactFloat64(), 1e-9)

	// Government spending is the only GDP component in month one.
	assert.InDelta(t, 0.5, rec.NomGDP, 1e-9)
	assert.InDelta(t, 0.5, rec.RealGDP, 1e-9)
	assert.InDelta(t, 0.99, rec.Unemployment, 1e-12)
	assert.InDelta(t, 0, rec.NomWages, 1e-12)
	assert.Less(t, rec.CPI, 100.0, "mass unemployment deflates prices")

	require.NoError(t, econ.CheckIdentity())
}

func TestRunFiatPeriod_Surplus(t *testing.T) {
	g := newFiatEngine(t)
	rec, err := g.RunFiatPeriod(12)
	require.NoError(t, err)

	econ := g.Economy()
	treasury := econ.Sheet(model.ActorTreasury)
	assert.InDelta(t, 1.0, treasury.Balance(model.Key(model.CategoryAssets, economy.AcctCash)).InexactFloat64(), 1e-9)
	assert.InDelta(t, 1.0, treasury.Balance(model.Key(model.CategoryEquity, economy.AcctTaxes)).InexactFloat64(), 1e-9)

	capitalists := econ.Sheet(model.ActorCapitalists)
	assert.InDelta(t, -1.0, capitalists.Balance(model.Key(model.CategoryAssets, economy.AcctCash)).InexactFloat64(), 1e-9)
	assert.InDelta(t, -1.0, capitalists.Balance(model.Key(model.CategoryEquity, economy.AcctTaxesPaid)).InexactFloat64(), 1e-9)

	assert.InDelta(t, 0, rec.NomGDP, 1e-12)
	require.NoError(t, econ.CheckIdentity())
}

func TestRunFiatPeriod_NoConsumptionBeforeFirstBusiness(t *testing.T) {
	g := newFiatEngine(t)
	_, err := g.RunFiatPeriod(-6)
	require.NoError(t, err)

	// No businesses yet, so nobody consumed.
	workers := g.Economy().Sheet(model.ActorWorkers)
	assert.True(t, workers.Balance(model.Key(model.CategoryEquity, economy.AcctConsumption)).IsZero())
	capitalists := g.Economy().Sheet(model.ActorCapitalists)
	assert.True(t, capitalists.Balance(model.Key(model.CategoryEquity, economy.AcctConsumption)).IsZero())
}

func TestFiatRun_10Years(t *testing.T) {
	g := newFiatEngine(t)
	econ := g.Economy()

	sawBusiness := false
	for p := 1; p <= 120; p++ {
		rec, err := g.RunFiatPeriod(-10)
		require.NoError(t, err, "period %d", p)
		require.NoError(t, econ.CheckIdentity(), "period %d", p)

		assert.GreaterOrEqual(t, econ.IdleWorkers, 0, "period %d", p)
		assert.LessOrEqual(t, econ.IdleWorkers, econ.WorkerPool, "period %d", p)
		assert.GreaterOrEqual(t, econ.FullEmploymentCounter, 0, "period %d", p)
		assert.LessOrEqual(t, rec.Unemployment, 0.99, "period %d", p)
		assert.Positive(t, rec.CPI, "period %d", p)

		if rec.NewBusinesses > 0 {
			sawBusiness = true
		}
	}

	require.Equal(t, 120, econ.FiatIndicators.Len())
	assert.True(t, sawBusiness, "deficit spending should eventually fund businesses")

	investments := econ.Sheet(model.ActorCapitalists).Balance(model.Key(model.CategoryAssets, economy.AcctInvestments))
	assert.True(t, investments.IsPositive())
}

func TestFiatRun_WagesStayNominal(t *testing.T) {
	// The wage level is fixed for the whole run; only prices move.
	g := newFiatEngine(t)
	start := g.Economy().CurrentWage
	for p := 0; p < 24; p++ {
		_, err := g.RunFiatPeriod(-10)
		require.NoError(t, err)
	}
	assert.Equal(t, start, g.Economy().CurrentWage)
}

func TestRunFiatPeriod_WrongMode(t *testing.T) {
	cfg := config.Default()
	econ, err := economy.New(economy.ModeCredit, cfg)
	require.NoError(t, err)

	_, err = New(econ, cfg).RunFiatPeriod(-6)
	require.Error(t, err)
}
