package model

import "github.com/shopspring/decimal"

// Flow is one double-entry posting between two accounts on a single actor's
// balance sheet. How the two legs move is decided by the category pair: see
// CounterSide.
type Flow struct {
	Source AccountKey
	Dest   AccountKey
	Amount decimal.Decimal
}
