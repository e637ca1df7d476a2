package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgersim-dev/ledgersim/internal/indicators"
	"github.com/ledgersim-dev/ledgersim/internal/ledger"
	"github.com/ledgersim-dev/ledgersim/internal/model"
)

func TestWriteBalanceSheet(t *testing.T) {
	sheet := ledger.New(model.ActorBanks)
	require.NoError(t, sheet.AddAccount(model.CategoryAssets, "Cash", decimal.NewFromInt(100)))
	require.NoError(t, sheet.AddAccount(model.CategoryEquity, "Bank Reserves", decimal.NewFromInt(100)))
	sheet.PostFlow(model.Key(model.CategoryAssets, "Capitalists Loans"), model.Key(model.CategoryAssets, "Cash"), decimal.NewFromInt(5))

	var buf bytes.Buffer
	require.NoError(t, WriteBalanceSheet(&buf, sheet))
	out := buf.String()

	assert.Contains(t, out, "Banks")
	assert.Contains(t, out, "Cash")
	assert.Contains(t, out, "Capitalists Loans")
	assert.Contains(t, out, "Liabs & Eq")
	// One Total row per category.
	assert.Equal(t, 3, strings.Count(out, "Total"))
	// Assets listed before Equity.
	assert.Less(t, strings.Index(out, "Cash"), strings.Index(out, "Bank Reserves"))
}

func TestWriteCreditCSV(t *testing.T) {
	series := &indicators.CreditSeries{}
	series.Append(indicators.CreditValues{GDP: 1.5, MoneySupply: 5, NewBusinesses: 1})
	series.Append(indicators.CreditValues{GDP: 2.5, MoneySupply: 10})

	var buf bytes.Buffer
	require.NoError(t, WriteCreditCSV(&buf, series))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header plus one row per period")
	assert.Equal(t, strings.Join(CreditHeader, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Y01M01,"))
	assert.True(t, strings.HasPrefix(lines[2], "Y01M02,"))
	assert.Equal(t, len(CreditHeader), len(strings.Split(lines[1], ",")))
}

func TestWriteFiatCSV(t *testing.T) {
	series := &indicators.FiatSeries{}
	series.Append(indicators.FiatValues{NomGDP: 0.5, RealGDP: 0.5, Unemployment: 0.99, CPI: 99.6})

	var buf bytes.Buffer
	require.NoError(t, WriteFiatCSV(&buf, series))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(FiatHeader, ","), lines[0])
	assert.Equal(t, len(FiatHeader), len(strings.Split(lines[1], ",")))
}
