package tax

import "math"

// Result is one withholding evaluation. NominalRate is the matched bracket's
// rate as a percentage; EffectiveRate is amount over the pre-withholding base,
// which differs from the nominal rate because of the subtractive adjustment.
type Result struct {
	Amount        float64
	NominalRate   float64
	EffectiveRate float64
}

// EvaluateSocialSecurity computes the INSS withholding for a gross base.
// The evaluation base is capped at the table ceiling; earnings above it are
// not taxed further.
func EvaluateSocialSecurity(table Table, gross float64) Result {
	if gross <= 0 {
		return Result{}
	}

	effectiveBase := math.Min(gross, table.Ceiling())
	bracket := table.Find(effectiveBase)

	amount := round2(effectiveBase*bracket.Rate - bracket.Adjustment)
	if amount < 0 {
		amount = 0
	}

	return Result{
		Amount:        amount,
		NominalRate:   round2(bracket.Rate * 100),
		EffectiveRate: round2(amount / gross * 100),
	}
}

// EvaluateIncomeTax computes the IRRF withholding on the base remaining after
// social security, less the per-dependent deduction. The bracket is selected
// by the dependent-adjusted taxable base, but the effective rate is reported
// against the pre-deduction base.
func EvaluateIncomeTax(table Table, dependentDeduction, baseAfterSocialSecurity float64, dependents int) Result {
	taxableBase := baseAfterSocialSecurity - float64(dependents)*dependentDeduction
	if taxableBase <= 0 {
		return Result{}
	}

	bracket := table.Find(taxableBase)
	if bracket.Rate == 0 {
		return Result{}
	}

	// The adjustment can exceed rate*base just above the exemption bound.
	amount := round2(taxableBase*bracket.Rate - bracket.Adjustment)
	if amount < 0 {
		amount = 0
	}

	effectiveRate := 0.0
	if baseAfterSocialSecurity > 0 {
		effectiveRate = round2(amount / baseAfterSocialSecurity * 100)
	}

	return Result{
		Amount:        amount,
		NominalRate:   round2(bracket.Rate * 100),
		EffectiveRate: effectiveRate,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
