package model

// Category classifies accounts on a balance sheet.
type Category string

const (
	CategoryAssets      Category = "Assets"
	CategoryLiabilities Category = "Liabilities"
	CategoryEquity      Category = "Equity"
)

// Rank orders categories for display: Assets, then Liabilities, then Equity.
func (c Category) Rank() int {
	switch c {
	case CategoryAssets:
		return 1
	case CategoryLiabilities:
		return 2
	default:
		return 3
	}
}

// CounterSide reports whether a flow between categories a and b follows the
// creation pattern (an asset matched against a liability or equity entry, both
// legs moving the same direction) rather than the transfer pattern (legs moving
// opposite directions). The category pair is the sole dispatch key.
func CounterSide(a, b Category) bool {
	if a == CategoryAssets && (b == CategoryLiabilities || b == CategoryEquity) {
		return true
	}
	if (a == CategoryLiabilities || a == CategoryEquity) && b == CategoryAssets {
		return true
	}
	return false
}

// AccountKey identifies an account within one actor's balance sheet.
type AccountKey struct {
	Category Category
	Name     string
}

// Key is shorthand for building an AccountKey.
func Key(category Category, name string) AccountKey {
	return AccountKey{Category: category, Name: name}
}

func (k AccountKey) String() string {
	return string(k.Category) + "/" + k.Name
}
