package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgersim-dev/ledgersim/internal/economy"
	"github.com/ledgersim-dev/ledgersim/internal/ledger"
	"github.com/ledgersim-dev/ledgersim/internal/model"
	"github.com/ledgersim-dev/ledgersim/internal/period"
)

// stepper posts one period's flows. Each economic action has a fixed posting
// recipe per actor; actors absent from the regime are skipped. The accounting
// identity is re-checked after every posting and any violation aborts the
// period with a diagnostic naming the period and actor.
type stepper struct {
	econ *economy.Economy
	p    int // 1-based period being simulated
}

func (s *stepper) post(actor model.Actor, source, dest model.AccountKey, amount decimal.Decimal) error {
	sheet := s.econ.Sheet(actor)
	if sheet == nil {
		return nil
	}
	sheet.Post(model.Flow{Source: source, Dest: dest, Amount: amount})
	if err := sheet.CheckIdentity(ledger.IdentityTolerance); err != nil {
		return fmt.Errorf("period %s: %w", period.Format(s.p), err)
	}
	return nil
}

func assets(name string) model.AccountKey {
	return model.Key(model.CategoryAssets, name)
}

func liabilities(name string) model.AccountKey {
	return model.Key(model.CategoryLiabilities, name)
}

func equity(name string) model.AccountKey {
	return model.Key(model.CategoryEquity, name)
}

// makeLoan: banks swap cash for a loan asset and fund the borrower's deposit
// account out of reserves; capitalists book the cash against a loan liability.
func (s *stepper) makeLoan(amt decimal.Decimal) error {
	if err := s.post(model.ActorBanks, assets(economy.AcctCapitalistLoans), assets(economy.AcctCash), amt); err != nil {
		return err
	}
	if err := s.post(model.ActorBanks, liabilities(economy.AcctCapitalistAccts), equity(economy.AcctBankReserves), amt); err != nil {
		return err
	}
	return s.post(model.ActorCapitalists, assets(economy.AcctCash), liabilities(economy.AcctCapitalistLoans), amt)
}

// invest: capitalists convert cash into investments, firms book the cash as
// equity, and banks move deposits from capitalist to firm accounts.
func (s *stepper) invest(amt decimal.Decimal) error {
	if err := s.post(model.ActorFirms, assets(economy.AcctCash), equity(economy.AcctFirmEquity), amt); err != nil {
		return err
	}
	if err := s.post(model.ActorCapitalists, assets(economy.AcctInvestments), assets(economy.AcctCash), amt); err != nil {
		return err
	}
	return s.post(model.ActorBanks, liabilities(economy.AcctFirmAccts), liabilities(economy.AcctCapitalistAccts), amt)
}

// payWorkers: firms draw down cash and equity, workers book wages.
func (s *stepper) payWorkers(amt decimal.Decimal) error {
	if err := s.post(model.ActorFirms, assets(economy.AcctCash), equity(economy.AcctFirmEquity), amt.Neg()); err != nil {
		return err
	}
	if err := s.post(model.ActorWorkers, assets(economy.AcctCash), equity(economy.AcctWages), amt); err != nil {
		return err
	}
	return s.post(model.ActorBanks, liabilities(economy.AcctWorkerAccts), liabilities(economy.AcctFirmAccts), amt)
}

// workersConsume: workers draw down cash and equity, firms book revenue.
func (s *stepper) workersConsume(amt decimal.Decimal) error {
	if err := s.post(model.ActorFirms, assets(economy.AcctCash), equity(economy.AcctFirmEquity), amt); err != nil {
		return err
	}
	if err := s.post(model.ActorWorkers, assets(economy.AcctCash), equity(economy.AcctConsumption), amt.Neg()); err != nil {
		return err
	}
	return s.post(model.ActorBanks, liabilities(economy.AcctFirmAccts), liabilities(economy.AcctWorkerAccts), amt)
}

// capitalistsConsume: capitalists draw down cash and equity, firms book revenue.
func (s *stepper) capitalistsConsume(amt decimal.Decimal) error {
	if err := s.post(model.ActorFirms, assets(economy.AcctCash), equity(economy.AcctFirmEquity), amt); err != nil {
		return err
	}
	if err := s.post(model.ActorCapitalists, assets(economy.AcctCash), equity(economy.AcctConsumption), amt.Neg()); err != nil {
		return err
	}
	return s.post(model.ActorBanks, liabilities(economy.AcctFirmAccts), liabilities(economy.AcctCapitalistAccts), amt)
}

// payCapitalists: firms pay dividends out of cash and equity.
func (s *stepper) payCapitalists(amt decimal.Decimal) error {
	if err := s.post(model.ActorFirms, assets(economy.AcctCash), equity(economy.AcctFirmEquity), amt.Neg()); err != nil {
		return err
	}
	if err := s.post(model.ActorCapitalists, assets(economy.AcctCash), equity(economy.AcctDividends), amt); err != nil {
		return err
	}
	return s.post(model.ActorBanks, liabilities(economy.AcctCapitalistAccts), liabilities(economy.AcctFirmAccts), amt)
}

// repayLoan: banks retire the loan asset and rebuild reserves out of the
// borrower's deposit account; capitalists draw down cash and loan liability.
func (s *stepper) repayLoan(amt decimal.Decimal) error {
	if err := s.post(model.ActorBanks, assets(economy.AcctCash), assets(economy.AcctCapitalistLoans), amt); err != nil {
		return err
	}
	if err := s.post(model.ActorBanks, equity(economy.AcctBankReserves), liabilities(economy.AcctCapitalistAccts), amt); err != nil {
		return err
	}
	return s.post(model.ActorCapitalists, assets(economy.AcctCash), liabilities(economy.AcctCapitalistLoans), amt.Neg())
}

// fiscalOp posts one month's government surplus (positive: taxation) or
// deficit (negative: spending into capitalists' hands).
func (s *stepper) fiscalOp(amt decimal.Decimal) error {
	treasuryAcct := equity(economy.AcctTaxes)
	capAcct := equity(economy.AcctTaxesPaid)
	if amt.Sign() <= 0 {
		treasuryAcct = equity(economy.AcctSpending)
		capAcct = liabilities(economy.AcctGovtContracts)
	}
	if err := s.post(model.ActorTreasury, assets(economy.AcctCash), treasuryAcct, amt); err != nil {
		return err
	}
	return s.post(model.ActorCapitalists, assets(economy.AcctCash), capAcct, amt.Neg())
}
