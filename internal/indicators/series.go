// Package indicators keeps the append-only per-period economic series.
// Records are never mutated after they are appended; trailing-12-month
// aggregates are computed at append time from the current values plus the
// preceding 11 records (fewer when fewer exist).
package indicators

// CreditRecord is one period's snapshot of a credit economy.
type CreditRecord struct {
	Period            int
	GDP               float64
	GDP12M            float64
	MoneySupply       float64
	TTMAvgMoneySupply float64
	WorkerIncomes     float64
	CapitalistIncomes float64
	FirmIncomes       float64
	NewBusinesses     int
	TTMNewBusinesses  int
}

// CreditSeries is the ordered credit-economy indicator series.
type CreditSeries struct {
	records []CreditRecord
}

// CreditValues are the raw per-period inputs for a credit record.
type CreditValues struct {
	GDP               float64
	MoneySupply       float64
	WorkerIncomes     float64
	CapitalistIncomes float64
	FirmIncomes       float64
	NewBusinesses     int
}

// Append derives the trailing aggregates and appends one record, returning it.
// The trailing money-supply figure is an average over a fixed 12-month window,
// even while fewer than 12 periods exist, matching the reference series.
func (s *CreditSeries) Append(v CreditValues) CreditRecord {
	rec := CreditRecord{
		Period:            len(s.records) + 1,
		GDP:               v.GDP,
		GDP12M:            v.GDP + s.tailSum(11, func(r CreditRecord) float64 { return r.GDP }),
		MoneySupply:       v.MoneySupply,
		TTMAvgMoneySupply: (v.MoneySupply + s.tailSum(11, func(r CreditRecord) float64 { return r.MoneySupply })) / 12,
		WorkerIncomes:     v.WorkerIncomes,
		CapitalistIncomes: v.CapitalistIncomes,
		FirmIncomes:       v.FirmIncomes,
		NewBusinesses:     v.NewBusinesses,
		TTMNewBusinesses:  v.NewBusinesses + s.tailSumInt(11, func(r CreditRecord) int { return r.NewBusinesses }),
	}
	s.records = append(s.records, rec)
	return rec
}

// Len returns the number of completed periods.
func (s *CreditSeries) Len() int {
	return len(s.records)
}

// Records returns a copy of the series for rendering.
func (s *CreditSeries) Records() []CreditRecord {
	out := make([]CreditRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *CreditSeries) tailSum(n int, field func(CreditRecord) float64) float64 {
	sum := 0.0
	start := len(s.records) - n
	if start < 0 {
		start = 0
	}
	for _, r := range s.records[start:] {
		sum += field(r)
	}
	return sum
}

func (s *CreditSeries) tailSumInt(n int, field func(CreditRecord) int) int {
	sum := 0
	start := len(s.records) - n
	if start < 0 {
		start = 0
	}
	for _, r := range s.records[start:] {
		sum += field(r)
	}
	return sum
}

// FiatRecord is one period's snapshot of a fiat economy.
type FiatRecord struct {
	Period           int
	NomGDP           float64
	RealGDP          float64
	NomGDP12M        float64
	RealGDP12M       float64
	Unemployment     float64
	NomWages         float64
	RealWages        float64
	TTMNomWages      float64
	TTMRealWages     float64
	NewBusinesses    int
	TTMNewBusinesses int
	CPI              float64
}

// FiatSeries is the ordered fiat-economy indicator series.
type FiatSeries struct {
	records []FiatRecord
}

// FiatValues are the raw per-period inputs for a fiat record.
type FiatValues struct {
	NomGDP        float64
	RealGDP       float64
	Unemployment  float64
	NomWages      float64
	RealWages     float64
	NewBusinesses int
	CPI           float64
}

// Append derives the trailing aggregates and appends one record, returning it.
func (s *FiatSeries) Append(v FiatValues) FiatRecord {
	rec := FiatRecord{
		Period:           len(s.records) + 1,
		NomGDP:           v.NomGDP,
		RealGDP:          v.RealGDP,
		NomGDP12M:        v.NomGDP + s.tailSum(11, func(r FiatRecord) float64 { return r.NomGDP }),
		RealGDP12M:       v.RealGDP + s.tailSum(11, func(r FiatRecord) float64 { return r.RealGDP }),
		Unemployment:     v.Unemployment,
		NomWages:         v.NomWages,
		RealWages:        v.RealWages,
		TTMNomWages:      v.NomWages + s.tailSum(11, func(r FiatRecord) float64 { return r.NomWages }),
		TTMRealWages:     v.RealWages + s.tailSum(11, func(r FiatRecord) float64 { return r.RealWages }),
		NewBusinesses:    v.NewBusinesses,
		TTMNewBusinesses: v.NewBusinesses + s.tailSumInt(11, func(r FiatRecord) int { return r.NewBusinesses }),
		CPI:              v.CPI,
	}
	s.records = append(s.records, rec)
	return rec
}

// Len returns the number of completed periods.
func (s *FiatSeries) Len() int {
	return len(s.records)
}

// Records returns a copy of the series for rendering.
func (s *FiatSeries) Records() []FiatRecord {
	out := make([]FiatRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *FiatSeries) tailSum(n int, field func(FiatRecord) float64) float64 {
	sum := 0.0
	start := len(s.records) - n
	if start < 0 {
		start = 0
	}
	for _, r := range s.records[start:] {
		sum += field(r)
	}
	return sum
}

func (s *FiatSeries) tailSumInt(n int, field func(FiatRecord) int) int {
	sum := 0
	start := len(s.records) - n
	if start < 0 {
		start = 0
	}
	for _, r := range s.records[start:] {
		sum += field(r)
	}
	return sum
}
