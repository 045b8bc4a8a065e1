package statement

import (
	"fmt"
	"math"

	"holerite/internal/tax"
)

const (
	// DefaultHoursDivisor substitutes a non-positive divisor input to keep the
	// hourly-rate derivation total.
	DefaultHoursDivisor = 220.0

	// FGTSRate is the employer severance-fund contribution over gross earnings.
	FGTSRate = 0.08
)

// Fixed premium multipliers over the hourly rate.
const (
	MultiplierNightShift    = 0.20
	MultiplierOvertime50    = 1.50
	MultiplierNightOvertime = 2.04
	MultiplierHolidayWorked = 2.00
)

const (
	refMonthly = "MENSAL"
	refNone    = "-"
)

type earningRule struct {
	code        string
	description string
	multiplier  float64
	hours       func(Inputs) float64
}

// Variable earning rows, emitted in this order when hours > 0. Holiday pay is
// treated as already inclusive of rest compensation, so it never feeds a DSR
// row.
var earningRules = []earningRule{
	{CodeNightShift, "Adicional Noturno 20%", MultiplierNightShift, func(in Inputs) float64 { return in.NightShiftHours }},
	{CodeOvertime50, "Hora Extra 50%", MultiplierOvertime50, func(in Inputs) float64 { return in.Overtime50Hours }},
	{CodeNightOvertime, "Hora Extra Noturna 70%", MultiplierNightOvertime, func(in Inputs) float64 { return in.NightOvertime70Hours }},
	{CodeHolidayWorked, "Domingo/Feriado Trabalhado", MultiplierHolidayWorked, func(in Inputs) float64 { return in.HolidayWorkedHours }},
}

type discountRule struct {
	code        string
	description string
	amount      func(Inputs) float64
}

// Manual discount rows, passed through verbatim in this order when > 0.
var discountRules = []discountRule{
	{CodeAdvance, "Adiantamento Salarial", func(in Inputs) float64 { return in.AdvanceDiscount }},
	{CodeHealthPlan, "Plano de Saúde", func(in Inputs) float64 { return in.HealthPlanDiscount }},
	{CodeDentalPlan, "Plano Odontológico", func(in Inputs) float64 { return in.DentalPlanDiscount }},
	{CodeMealVoucher, "Vale Refeição", func(in Inputs) float64 { return in.MealVoucherDiscount }},
	{CodeOtherDiscounts, "Outros Descontos", func(in Inputs) float64 { return in.OtherDiscounts }},
}

// Builder assembles payroll statements. It holds no mutable state, so a
// single instance is safe for concurrent use.
type Builder struct {
	cfg tax.Config
}

func NewBuilder(cfg tax.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Config exposes the withholding tables the builder computes with.
func (b *Builder) Config() tax.Config {
	return b.cfg
}

// Build computes a full statement from the given inputs. It is a pure,
// deterministic, single-pass transform: identical inputs always yield an
// identical result.
func (b *Builder) Build(in Inputs) Result {
	in = clampNegatives(in)

	divisor := in.HoursDivisor
	if divisor <= 0 {
		divisor = DefaultHoursDivisor
	}
	hourlyRate := in.BaseSalary / divisor

	// The base-salary row is always present, even when the salary is zero.
	lines := []LineItem{{
		Code:        CodeBaseSalary,
		Description: "Salário Base",
		Reference:   refMonthly,
		Earning:     round2(in.BaseSalary),
		Kind:        KindEarning,
	}}

	var overtimeEarnings, nightShiftEarnings float64
	for _, rule := range earningRules {
		hours := rule.hours(in)
		if hours <= 0 {
			continue
		}
		amount := round2(hourlyRate * rule.multiplier * hours)
		lines = append(lines, LineItem{
			Code:        rule.code,
			Description: rule.description,
			Reference:   fmt.Sprintf("%.2fh", hours),
			Earning:     amount,
			Kind:        KindEarning,
		})
		switch rule.code {
		case CodeOvertime50, CodeNightOvertime:
			overtimeEarnings += amount
		case CodeNightShift:
			nightShiftEarnings = amount
		}
	}

	// The working-day floor defuses the division, it is not data validation.
	workingDays := in.WorkingDays
	if workingDays <= 0 {
		workingDays = 1
	}

	if in.RestDays > 0 {
		if overtimeEarnings > 0 {
			lines = append(lines, dsrLine(CodeDSROvertime, "DSR sobre Horas Extras", overtimeEarnings, workingDays, in.RestDays))
		}
		if nightShiftEarnings > 0 {
			lines = append(lines, dsrLine(CodeDSRNightShift, "DSR sobre Adicional Noturno", nightShiftEarnings, workingDays, in.RestDays))
		}
	}

	gross := 0.0
	for _, line := range lines {
		gross += line.Earning
	}
	gross = round2(gross)

	// INSS row is always emitted, even at zero.
	ss := tax.EvaluateSocialSecurity(b.cfg.SocialSecurity, gross)
	ssNote := ""
	if ss.EffectiveRate > 0 {
		ssNote = fmt.Sprintf("alíquota efetiva %.2f%%", ss.EffectiveRate)
	}
	lines = append(lines, LineItem{
		Code:        CodeSocialSecurity,
		Description: "INSS",
		Reference:   fmt.Sprintf("%.2f%%", ss.NominalRate),
		Discount:    ss.Amount,
		Kind:        KindDiscount,
		Note:        ssNote,
	})

	incomeTaxBase := round2(gross - ss.Amount)
	if incomeTaxBase < 0 {
		incomeTaxBase = 0
	}

	// Unlike INSS, a zero IRRF row is suppressed entirely.
	ir := tax.EvaluateIncomeTax(b.cfg.IncomeTax, b.cfg.DependentDeduction, incomeTaxBase, in.Dependents)
	if ir.Amount > 0 {
		lines = append(lines, LineItem{
			Code:        CodeIncomeTax,
			Description: "IRRF",
			Reference:   fmt.Sprintf("%.2f%%", ir.NominalRate),
			Discount:    ir.Amount,
			Kind:        KindDiscount,
			Note:        fmt.Sprintf("alíquota efetiva %.2f%%", ir.EffectiveRate),
		})
	}

	for _, rule := range discountRules {
		amount := rule.amount(in)
		if amount <= 0 {
			continue
		}
		lines = append(lines, LineItem{
			Code:        rule.code,
			Description: rule.description,
			Reference:   refNone,
			Discount:    round2(amount),
			Kind:        KindDiscount,
		})
	}

	var totalEarnings, totalDiscounts float64
	for _, line := range lines {
		totalEarnings += line.Earning
		totalDiscounts += line.Discount
	}
	totalEarnings = round2(totalEarnings)
	totalDiscounts = round2(totalDiscounts)

	return Result{
		Lines:          lines,
		TotalEarnings:  totalEarnings,
		TotalDiscounts: totalDiscounts,
		NetPay:         round2(totalEarnings - totalDiscounts),
		// FGTS is computed on the full gross, never reduced by the advance.
		FGTSDeposit: round2(gross * FGTSRate),
		Bases: Bases{
			SocialSecurity: math.Min(gross, b.cfg.SocialSecurity.Ceiling()),
			IncomeTax:      incomeTaxBase,
			SeveranceFund:  gross,
		},
	}
}

func dsrLine(code, description string, earnings float64, workingDays, restDays int) LineItem {
	return LineItem{
		Code:        code,
		Description: description,
		Reference:   fmt.Sprintf("%dd", restDays),
		Earning:     round2(earnings / float64(workingDays) * float64(restDays)),
		Kind:        KindEarning,
	}
}

// Negative values are a caller contract violation; they are clamped so the
// statement never carries a negative earning or discount row.
func clampNegatives(in Inputs) Inputs {
	for _, v := range []*float64{
		&in.BaseSalary,
		&in.NightShiftHours, &in.Overtime50Hours, &in.NightOvertime70Hours, &in.HolidayWorkedHours,
		&in.AdvanceDiscount, &in.HealthPlanDiscount, &in.DentalPlanDiscount, &in.MealVoucherDiscount, &in.OtherDiscounts,
	} {
		if *v < 0 {
			*v = 0
		}
	}
	if in.Dependents < 0 {
		in.Dependents = 0
	}
	if in.RestDays < 0 {
		in.RestDays = 0
	}
	return in
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
