package economy

import (
	"github.com/shopspring/decimal"

	"github.com/ledgersim-dev/ledgersim/internal/config"
	"github.com/ledgersim-dev/ledgersim/internal/model"
)

// Well-known account names used by the opening charts and the step recipes.
const (
	AcctCash            = "Cash"
	AcctBankReserves    = "Bank Reserves"
	AcctCapitalistLoans = "Capitalists Loans"
	AcctCapitalistAccts = "Capitalists Accounts"
	AcctFirmAccts       = "Firm Accounts"
	AcctWorkerAccts     = "Worker Accounts"
	AcctInvestments     = "Investments"
	AcctFirmEquity      = "Firm Equity"
	AcctWages           = "Wages"
	AcctConsumption     = "Consumption"
	AcctDividends       = "Dividends"
	AcctSpending        = "Spending"
	AcctTaxes           = "Taxes"
	AcctTaxesPaid       = "Taxes Paid"
	AcctGovtContracts   = "Govt Contracts"
)

// seed writes the opening chart for the regime. Every other account is created
// lazily by the first flow that touches it.
func seed(e *Economy, cfg *config.Config) error {
	switch e.mode {
	case ModeCredit:
		money := decimal.NewFromFloat(cfg.Economy.MoneySupply)
		banks := e.sheets[model.ActorBanks]
		if err := banks.AddAccount(model.CategoryAssets, AcctCash, money); err != nil {
			return err
		}
		if err := banks.AddAccount(model.CategoryEquity, AcctBankReserves, money); err != nil {
			return err
		}
	case ModeFiat:
		treasury := e.sheets[model.ActorTreasury]
		if err := treasury.AddAccount(model.CategoryAssets, AcctCash, decimal.Zero); err != nil {
			return err
		}
		if err := treasury.AddAccount(model.CategoryEquity, AcctSpending, decimal.Zero); err != nil {
			return err
		}
		if err := treasury.AddAccount(model.CategoryEquity, AcctTaxes, decimal.Zero); err != nil {
			return err
		}
	}
	return nil
}
