package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ledgersim-dev/ledgersim/internal/indicators"
	"github.com/ledgersim-dev/ledgersim/internal/period"
)

// CreditHeader is the CSV header for credit-economy indicator exports.
var CreditHeader = []string{
	"period", "gdp", "gdp_12m", "money_supply", "ttm_avg_money_supply",
	"worker_incomes", "capitalist_incomes", "firm_incomes",
	"new_businesses", "ttm_new_businesses",
}

// FiatHeader is the CSV header for fiat-economy indicator exports.
var FiatHeader = []string{
	"period", "nom_gdp", "real_gdp", "nom_gdp_12m", "real_gdp_12m",
	"unemployment", "nom_wages", "real_wages", "ttm_nom_wages", "ttm_real_wages",
	"new_businesses", "ttm_new_businesses", "cpi",
}

// WriteCreditCSV exports a credit indicator series, one row per period.
func WriteCreditCSV(w io.Writer, series *indicators.CreditSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CreditHeader); err != nil {
		return fmt.Errorf("writing credit header: %w", err)
	}
	for _, rec := range series.Records() {
		row := []string{
			period.Format(rec.Period),
			num(rec.GDP),
			num(rec.GDP12M),
			num(rec.MoneySupply),
			num(rec.TTMAvgMoneySupply),
			num(rec.WorkerIncomes),
			num(rec.CapitalistIncomes),
			num(rec.FirmIncomes),
			strconv.Itoa(rec.NewBusinesses),
			strconv.Itoa(rec.TTMNewBusinesses),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing period %s: %w", period.Format(rec.Period), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFiatCSV exports a fiat indicator series, one row per period.
func WriteFiatCSV(w io.Writer, series *indicators.FiatSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(FiatHeader); err != nil {
		return fmt.Errorf("writing fiat header: %w", err)
	}
	for _, rec := range series.Records() {
		row := []string{
			period.Format(rec.Period),
			num(rec.NomGDP),
			num(rec.RealGDP),
			num(rec.NomGDP12M),
			num(rec.RealGDP12M),
			num(rec.Unemployment),
			num(rec.NomWages),
			num(rec.RealWages),
			num(rec.TTMNomWages),
			num(rec.TTMRealWages),
			strconv.Itoa(rec.NewBusinesses),
			strconv.Itoa(rec.TTMNewBusinesses),
			num(rec.CPI),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing period %s: %w", period.Format(rec.Period), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
