package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ledgersim-dev/ledgersim/internal/economy"
	"github.com/ledgersim-dev/ledgersim/internal/indicators"
	"github.com/ledgersim-dev/ledgersim/internal/model"
)

// RunFiatPeriod executes one fiat-regime month: fiscal operation, investment,
// labor market and inflation, payroll, consumption, dividends, then append
// indicators. annualSurplus is the period's policy input: the signed annual
// government budget surplus (negative means deficit spending).
func (g *Engine) RunFiatPeriod(annualSurplus float64) (indicators.FiatRecord, error) {
	if g.econ.Mode() != economy.ModeFiat {
		return indicators.FiatRecord{}, fmt.Errorf("fiat period on %s economy", g.econ.Mode())
	}
	s := &stepper{econ: g.econ, p: g.econ.Period() + 1}
	cashKey := model.Key(model.CategoryAssets, economy.AcctCash)

	// Deflators are fixed at the top of the period, before this month's
	// inflation is applied.
	deflator := 1 / (g.econ.CurrentCPI / g.econ.StartingCPI)
	wageDeflator := 1 / (g.econ.CurrentWage / g.econ.StartingWage)

	// Fiscal operation: monthly slice of the annual surplus.
	monthlySurplus := annualSurplus / 12
	govtSpending := 0.0
	if monthlySurplus < 0 {
		govtSpending = -monthlySurplus
	}
	if err := s.fiscalOp(decimal.NewFromFloat(monthlySurplus)); err != nil {
		return indicators.FiatRecord{}, err
	}

	// Investment against the inflation-adjusted startup cost. The cash read
	// here also feeds the consumption decision below.
	investment := 0.0
	newBusinesses := 0
	capCash := g.econ.Sheet(model.ActorCapitalists).Balance(cashKey).InexactFloat64()
	reserve := g.cfg.Fiat.CapitalistReserve
	nomStartup := g.econ.RealStartupCapital / deflator
	if capCash-reserve > nomStartup {
		newBusinesses = int((capCash - reserve) / nomStartup)
		investment = nomStartup * float64(newBusinesses)
		if err := s.invest(decimal.NewFromFloat(investment)); err != nil {
			return indicators.FiatRecord{}, err
		}
	}

	// Labor market. A month with no new businesses sheds one worker back into
	// the idle pool; each new business absorbs a fixed crew.
	firmCash := g.econ.Sheet(model.ActorFirms).Balance(cashKey).InexactFloat64()
	workersNeeded := newBusinesses * g.cfg.Fiat.WorkersPerBusiness
	if newBusinesses == 0 {
		workersNeeded = -1
	}
	idle := g.econ.IdleWorkers - workersNeeded
	if idle < 0 {
		idle = 0
	}
	if idle > g.econ.WorkerPool {
		idle = g.econ.WorkerPool
	}
	g.econ.IdleWorkers = idle
	if idle == 0 {
		g.econ.FullEmploymentCounter++
	} else if g.econ.FullEmploymentCounter > 0 {
		g.econ.FullEmploymentCounter--
	}
	unemployment := g.econ.Unemployment()
	priceInflation := CPIGrowth(unemployment, g.econ.FullEmploymentCounter)
	g.econ.CurrentCPI = NextCPI(g.econ.CurrentCPI, priceInflation)

	// Payroll for the employed workforce. The wage level itself stays fixed
	// across the run.
	payroll := g.econ.CurrentWage * float64(g.econ.WorkerPool-g.econ.IdleWorkers)
	if err := s.payWorkers(decimal.NewFromFloat(payroll)); err != nil {
		return indicators.FiatRecord{}, err
	}

	// Consumption happens only once at least one business exists.
	capInvestments := g.econ.Sheet(model.ActorCapitalists).Balance(model.Key(model.CategoryAssets, economy.AcctInvestments)).InexactFloat64()
	kConsumption := math.Max(0, g.cfg.Behavior.CapitalistSpendShare*(capCash-reserve))
	if capInvestments > 0 {
		if err := s.capitalistsConsume(decimal.NewFromFloat(kConsumption)); err != nil {
			return indicators.FiatRecord{}, err
		}
	}
	workerCash := g.econ.Sheet(model.ActorWorkers).Balance(cashKey).InexactFloat64()
	wConsumption := g.cfg.Behavior.WorkerSpendShare * workerCash
	if capInvestments > 0 {
		if err := s.workersConsume(decimal.NewFromFloat(wConsumption)); err != nil {
			return indicators.FiatRecord{}, err
		}
	}

	// Dividends out of the pre-payroll firm cash reading.
	earnings := g.cfg.Behavior.DividendShare * firmCash
	if err := s.payCapitalists(decimal.NewFromFloat(earnings)); err != nil {
		return indicators.FiatRecord{}, err
	}

	// Indicators.
	gdp := wConsumption + kConsumption + investment + govtSpending
	rec := g.econ.FiatIndicators.Append(indicators.FiatValues{
		NomGDP:        gdp,
		RealGDP:       gdp * deflator,
		Unemployment:  unemployment,
		NomWages:      payroll,
		RealWages:     payroll * wageDeflator,
		NewBusinesses: newBusinesses,
		CPI:           g.econ.CurrentCPI,
	})
	return rec, nil
}
