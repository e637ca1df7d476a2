package engine

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ledgersim-dev/ledgersim/internal/config"
	"github.com/ledgersim-dev/ledgersim/internal/economy"
	"github.com/ledgersim-dev/ledgersim/internal/indicators"
	"github.com/ledgersim-dev/ledgersim/internal/model"
)

// Engine executes the scripted monthly action sequence against one economy.
// Periods are atomic: each action within a period observes the balances left
// by the actions before it.
type Engine struct {
	econ *economy.Economy
	cfg  *config.Config
}

// New creates an engine for an economy.
func New(econ *economy.Economy, cfg *config.Config) *Engine {
	return &Engine{econ: econ, cfg: cfg}
}

// Economy returns the engine's economy for read access.
func (g *Engine) Economy() *economy.Economy {
	return g.econ
}

// RunCreditPeriod executes one credit-regime month: lend, invest, pay workers,
// consume, pay dividends, repay loans, then append indicators. requiredReserve
// is the period's policy input: banks lend only while reserves stay above it.
func (g *Engine) RunCreditPeriod(requiredReserve float64) (indicators.CreditRecord, error) {
	if g.econ.Mode() != economy.ModeCredit {
		return indicators.CreditRecord{}, fmt.Errorf("credit period on %s economy", g.econ.Mode())
	}
	s := &stepper{econ: g.econ, p: g.econ.Period() + 1}
	cashKey := model.Key(model.CategoryAssets, economy.AcctCash)
	reservesKey := model.Key(model.CategoryEquity, economy.AcctBankReserves)

	// Lending, reserve-constrained.
	lending := g.cfg.Credit.LendingIncrement
	reserves := g.econ.Sheet(model.ActorBanks).Balance(reservesKey).InexactFloat64()
	if reserves >= lending+requiredReserve {
		if err := s.makeLoan(decimal.NewFromFloat(lending)); err != nil {
			return indicators.CreditRecord{}, err
		}
	}

	// Investment: every whole startup-capital unit above the reserve buffer
	// founds a business. The cash read here also feeds the consumption and
	// repayment decisions below.
	investment := 0.0
	newBusinesses := 0
	capCash := g.econ.Sheet(model.ActorCapitalists).Balance(cashKey).InexactFloat64()
	reserve := g.cfg.Credit.CapitalistReserve
	startup := g.cfg.Credit.StartupCapital
	if capCash-reserve > startup {
		newBusinesses = int((capCash - reserve) / startup)
		investment = startup * float64(newBusinesses)
		if err := s.invest(decimal.NewFromFloat(investment)); err != nil {
			return indicators.CreditRecord{}, err
		}
	}

	// Payroll. Dividends below reuse this same cash reading.
	firmCash := g.econ.Sheet(model.ActorFirms).Balance(cashKey).InexactFloat64()
	payroll := g.cfg.Behavior.PayrollShare * firmCash
	if err := s.payWorkers(decimal.NewFromFloat(payroll)); err != nil {
		return indicators.CreditRecord{}, err
	}

	// Worker consumption out of post-payroll cash.
	workerCash := g.econ.Sheet(model.ActorWorkers).Balance(cashKey).InexactFloat64()
	wConsumption := g.cfg.Behavior.WorkerSpendShare * workerCash
	if err := s.workersConsume(decimal.NewFromFloat(wConsumption)); err != nil {
		return indicators.CreditRecord{}, err
	}

	// Capitalist consumption above the reserve buffer, floored at zero.
	kConsumption := math.Max(0, g.cfg.Behavior.CapitalistSpendShare*(capCash-reserve))
	if err := s.capitalistsConsume(decimal.NewFromFloat(kConsumption)); err != nil {
		return indicators.CreditRecord{}, err
	}

	// Dividends.
	earnings := g.cfg.Behavior.DividendShare * firmCash
	if err := s.payCapitalists(decimal.NewFromFloat(earnings)); err != nil {
		return indicators.CreditRecord{}, err
	}

	// Amortized loan repayment; skipped when nothing is outstanding or cash
	// cannot cover the payment.
	loanBalance := g.econ.Sheet(model.ActorCapitalists).Balance(model.Key(model.CategoryLiabilities, economy.AcctCapitalistLoans)).InexactFloat64()
	pmt := LoanPayment(loanBalance, g.cfg.Credit.LoanAnnualRatePct, g.cfg.Credit.LoanTermYears)
	if pmt > 0 && capCash >= pmt {
		if err := s.repayLoan(decimal.NewFromFloat(pmt)); err != nil {
			return indicators.CreditRecord{}, err
		}
	}

	// Indicators. Money supply is whatever of the seed total has left the
	// banks' reserves.
	gdp := wConsumption + kConsumption + investment
	moneySupply := g.cfg.Economy.MoneySupply - g.econ.Sheet(model.ActorBanks).Balance(reservesKey).InexactFloat64()
	rec := g.econ.CreditIndicators.Append(indicators.CreditValues{
		GDP:               gdp,
		MoneySupply:       moneySupply,
		WorkerIncomes:     payroll,
		CapitalistIncomes: earnings,
		FirmIncomes:       wConsumption + kConsumption,
		NewBusinesses:     newBusinesses,
	})
	return rec, nil
}
