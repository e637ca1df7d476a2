package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgersim-dev/ledgersim/internal/model"
)

// IdentityTolerance is the default tolerance for the accounting identity.
var IdentityTolerance = decimal.New(1, -9)

// DuplicateAccountError reports an AddAccount call for an existing account.
type DuplicateAccountError struct {
	Actor model.Actor
	Key   model.AccountKey
}

func (e DuplicateAccountError) Error() string {
	return fmt.Sprintf("%s: account %s already exists", e.Actor, e.Key)
}

// IdentityError reports a violation of Assets == Liabilities + Equity. It
// indicates a posting-rule bug, not a domain condition, and is fatal to a run.
type IdentityError struct {
	Actor  model.Actor
	Totals Totals
}

func (e IdentityError) Error() string {
	return fmt.Sprintf("%s: accounting identity violated: assets %s != liabilities %s + equity %s",
		e.Actor, e.Totals.Assets.String(), e.Totals.Liabilities.String(), e.Totals.Equity.String())
}
