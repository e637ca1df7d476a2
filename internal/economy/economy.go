package economy

import (
	"fmt"

	"github.com/ledgersim-dev/ledgersim/internal/config"
	"github.com/ledgersim-dev/ledgersim/internal/indicators"
	"github.com/ledgersim-dev/ledgersim/internal/ledger"
	"github.com/ledgersim-dev/ledgersim/internal/model"
)

// Mode selects the monetary regime being simulated.
type Mode string

const (
	ModeCredit Mode = "credit"
	ModeFiat   Mode = "fiat"
)

// ParseMode converts a CLI/config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCredit:
		return ModeCredit, nil
	case ModeFiat:
		return ModeFiat, nil
	default:
		return "", fmt.Errorf("unknown economy mode: %q", s)
	}
}

// Economy aggregates every actor's balance sheet with the global state the
// step engine reads and mutates. It is single-writer: one simulation run at a
// time may mutate it.
type Economy struct {
	mode   Mode
	actors []model.Actor
	sheets map[model.Actor]*ledger.BalanceSheet

	// Labor market and price level. Mutated in place each period.
	WorkerPool            int
	IdleWorkers           int
	StartingCPI           float64
	CurrentCPI            float64
	StartingWage          float64
	CurrentWage           float64
	RealStartupCapital    float64
	FullEmploymentCounter int

	// Indicator series; exactly one is non-nil depending on mode.
	CreditIndicators *indicators.CreditSeries
	FiatIndicators   *indicators.FiatSeries
}

// New creates an economy for the given mode with seeded opening balances:
// credit regimes start the Banks with the configured money supply in cash and
// reserves; fiat regimes start the Treasury at zero.
func New(mode Mode, cfg *config.Config) (*Economy, error) {
	e := &Economy{
		mode:               mode,
		sheets:             make(map[model.Actor]*ledger.BalanceSheet),
		WorkerPool:         cfg.Economy.WorkerPool,
		IdleWorkers:        cfg.Economy.WorkerPool,
		StartingCPI:        cfg.Economy.StartingCPI,
		CurrentCPI:         cfg.Economy.StartingCPI,
		StartingWage:       cfg.Economy.StartingWage,
		CurrentWage:        cfg.Economy.StartingWage,
		RealStartupCapital: cfg.Economy.RealStartupCapital,
	}

	switch mode {
	case ModeCredit:
		e.actors = model.CreditActors()
		e.CreditIndicators = &indicators.CreditSeries{}
	case ModeFiat:
		e.actors = model.FiatActors()
		e.FiatIndicators = &indicators.FiatSeries{}
	default:
		return nil, fmt.Errorf("unknown economy mode: %q", mode)
	}

	for _, actor := range e.actors {
		e.sheets[actor] = ledger.New(actor)
	}
	if err := seed(e, cfg); err != nil {
		return nil, fmt.Errorf("seeding %s economy: %w", mode, err)
	}
	return e, nil
}

// Mode returns the monetary regime.
func (e *Economy) Mode() Mode {
	return e.mode
}

// Actors returns the actor set in display order.
func (e *Economy) Actors() []model.Actor {
	return e.actors
}

// Sheet returns an actor's balance sheet, or nil if the actor is not part of
// this economy's regime.
func (e *Economy) Sheet(actor model.Actor) *ledger.BalanceSheet {
	return e.sheets[actor]
}

// Period returns the number of completed periods.
func (e *Economy) Period() int {
	if e.CreditIndicators != nil {
		return e.CreditIndicators.Len()
	}
	return e.FiatIndicators.Len()
}

// Unemployment is the current idle share, capped at 0.99.
func (e *Economy) Unemployment() float64 {
	u := float64(e.IdleWorkers) / float64(e.WorkerPool)
	if u > 0.99 {
		return 0.99
	}
	return u
}

// CheckIdentity verifies the accounting identity on every actor's sheet.
func (e *Economy) CheckIdentity() error {
	for _, actor := range e.actors {
		if err := e.sheets[actor].CheckIdentity(ledger.IdentityTolerance); err != nil {
			return err
		}
	}
	return nil
}
