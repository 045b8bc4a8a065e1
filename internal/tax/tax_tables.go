package tax

import "math"

// Unbounded marks the final bracket of a table that has no upper limit.
var Unbounded = math.Inf(1)

// Bracket is one row of a progressive withholding table. Rate applies to the
// whole evaluation base, not only the marginal slice; Adjustment is the
// closed-form correction for the brackets below it.
type Bracket struct {
	UpperBound float64 // inclusive
	Rate       float64 // fraction, e.g. 0.12
	Adjustment float64
}

// Table is an ordered sequence of brackets by ascending upper bound,
// covering [0, +inf) with no gaps.
type Table []Bracket

// Find returns the first bracket whose upper bound covers base.
// The last bracket is returned for any base above every bound.
func (t Table) Find(base float64) Bracket {
	for _, b := range t {
		if base <= b.UpperBound {
			return b
		}
	}
	return t[len(t)-1]
}

// Ceiling returns the highest finite upper bound in the table.
func (t Table) Ceiling() float64 {
	ceiling := 0.0
	for _, b := range t {
		if !math.IsInf(b.UpperBound, 1) && b.UpperBound > ceiling {
			ceiling = b.UpperBound
		}
	}
	return ceiling
}

// DefaultDependentDeduction is the monthly income-tax deduction per dependent.
const DefaultDependentDeduction = 189.59

// DefaultSocialSecurityTable is the current INSS contribution table.
// Contributions are capped at the last bracket's bound.
func DefaultSocialSecurityTable() Table {
	return Table{
		{UpperBound: 1518.00, Rate: 0.075, Adjustment: 0},
		{UpperBound: 2793.88, Rate: 0.09, Adjustment: 22.77},
		{UpperBound: 4190.83, Rate: 0.12, Adjustment: 106.59},
		{UpperBound: 8157.41, Rate: 0.14, Adjustment: 190.40},
	}
}

// DefaultIncomeTaxTable is the current IRRF withholding table. The first row
// is the exemption band; withholding just above it is clamped at zero because
// the closed form can go negative near the bound.
func DefaultIncomeTaxTable() Table {
	return Table{
		{UpperBound: 2428.80, Rate: 0, Adjustment: 0},
		{UpperBound: 3751.05, Rate: 0.15, Adjustment: 394.16},
		{UpperBound: 4664.68, Rate: 0.225, Adjustment: 675.49},
		{UpperBound: Unbounded, Rate: 0.275, Adjustment: 908.73},
	}
}

// Config bundles the withholding tables and constants so a future tax year
// can be swapped in without touching the evaluators.
type Config struct {
	SocialSecurity     Table
	IncomeTax          Table
	DependentDeduction float64
}

func DefaultConfig() Config {
	return Config{
		SocialSecurity:     DefaultSocialSecurityTable(),
		IncomeTax:          DefaultIncomeTaxTable(),
		DependentDeduction: DefaultDependentDeduction,
	}
}
