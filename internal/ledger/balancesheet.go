package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ledgersim-dev/ledgersim/internal/model"
)

// BalanceSheet is the cumulative double-entry balance sheet of one actor.
// Accounts are keyed by (category, name); reads of unknown accounts yield zero
// and writes create them lazily at zero before the flow applies.
type BalanceSheet struct {
	actor    model.Actor
	balances map[model.AccountKey]decimal.Decimal
	totals   Totals
}

// Totals are the derived per-category sums plus the Liabilities+Equity check
// value. Assets must equal LiabsAndEq after every posting.
type Totals struct {
	Assets      decimal.Decimal
	Liabilities decimal.Decimal
	Equity      decimal.Decimal
	LiabsAndEq  decimal.Decimal
}

// New creates an empty balance sheet for an actor.
func New(actor model.Actor) *BalanceSheet {
	return &BalanceSheet{
		actor:    actor,
		balances: make(map[model.AccountKey]decimal.Decimal),
		totals: Totals{
			Assets:      decimal.Zero,
			Liabilities: decimal.Zero,
			Equity:      decimal.Zero,
			LiabsAndEq:  decimal.Zero,
		},
	}
}

// Actor returns the sheet's owner.
func (b *BalanceSheet) Actor() model.Actor {
	return b.actor
}

// AddAccount inserts a new account with a starting balance and recomputes
// totals. Inserting an existing (category, name) pair fails with
// DuplicateAccountError; the posting path never needs AddAccount for accounts
// it creates itself.
func (b *BalanceSheet) AddAccount(category model.Category, name string, balance decimal.Decimal) error {
	key := model.Key(category, name)
	if _, ok := b.balances[key]; ok {
		return DuplicateAccountError{Actor: b.actor, Key: key}
	}
	b.balances[key] = balance
	b.recalcTotals()
	return nil
}

// PostFlow applies one double-entry posting. Either account is created at zero
// if absent. The source always moves by amount; the destination moves the same
// direction when the category pair matches the creation pattern and the
// opposite direction otherwise.
func (b *BalanceSheet) PostFlow(source, dest model.AccountKey, amount decimal.Decimal) {
	if _, ok := b.balances[source]; !ok {
		b.balances[source] = decimal.Zero
	}
	if _, ok := b.balances[dest]; !ok {
		b.balances[dest] = decimal.Zero
	}

	b.balances[source] = b.balances[source].Add(amount)
	if model.CounterSide(source.Category, dest.Category) {
		b.balances[dest] = b.balances[dest].Add(amount)
	} else {
		b.balances[dest] = b.balances[dest].Sub(amount)
	}
	b.recalcTotals()
}

// Post applies a Flow value.
func (b *BalanceSheet) Post(f model.Flow) {
	b.PostFlow(f.Source, f.Dest, f.Amount)
}

// Balance returns an account's balance, or zero if the account does not exist.
func (b *BalanceSheet) Balance(key model.AccountKey) decimal.Decimal {
	return b.balances[key]
}

// Totals returns the derived category totals.
func (b *BalanceSheet) Totals() Totals {
	return b.totals
}

// CheckIdentity verifies Assets == Liabilities + Equity within tol, returning
// an IdentityError describing the imbalance otherwise.
func (b *BalanceSheet) CheckIdentity(tol decimal.Decimal) error {
	diff := b.totals.Assets.Sub(b.totals.LiabsAndEq).Abs()
	if diff.GreaterThan(tol) {
		return IdentityError{Actor: b.actor, Totals: b.totals}
	}
	return nil
}

// Account pairs a key with its current balance, for display.
type Account struct {
	Key     model.AccountKey
	Balance decimal.Decimal
}

// Accounts returns all accounts in display order: category rank first, then
// name. This ordering is presentation-only; lookups always go through Balance.
func (b *BalanceSheet) Accounts() []Account {
	out := make([]Account, 0, len(b.balances))
	for key, bal := range b.balances {
		out = append(out, Account{Key: key, Balance: bal})
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := out[i].Key.Category.Rank(), out[j].Key.Category.Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].Key.Name < out[j].Key.Name
	})
	return out
}

func (b *BalanceSheet) recalcTotals() {
	assets, liabs, equity := decimal.Zero, decimal.Zero, decimal.Zero
	for key, bal := range b.balances {
		switch key.Category {
		case model.CategoryAssets:
			assets = assets.Add(bal)
		case model.CategoryLiabilities:
			liabs = liabs.Add(bal)
		case model.CategoryEquity:
			equity = equity.Add(bal)
		}
	}
	b.totals = Totals{
		Assets:      assets,
		Liabilities: liabs,
		Equity:      equity,
		LiabsAndEq:  liabs.Add(equity),
	}
}
