package statement_test

import (
	"testing"

	"holerite/internal/statement"
	"holerite/internal/tax"

	"github.com/stretchr/testify/assert"
)

func newBuilder() *statement.Builder {
	return statement.NewBuilder(tax.DefaultConfig())
}

func findLine(t *testing.T, result statement.Result, code string) statement.LineItem {
	t.Helper()
	for _, line := range result.Lines {
		if line.Code == code {
			return line
		}
	}
	t.Fatalf("line %s not found", code)
	return statement.LineItem{}
}

func hasLine(result statement.Result, code string) bool {
	for _, line := range result.Lines {
		if line.Code == code {
			return true
		}
	}
	return false
}

func TestBuild_SalaryOnlyStatement(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{
		BaseSalary:   3000,
		HoursDivisor: 220,
		RestDays:     5,
		WorkingDays:  25,
	})

	assert.Len(t, result.Lines, 3)

	base := findLine(t, result, statement.CodeBaseSalary)
	assert.Equal(t, 3000.0, base.Earning)
	assert.Equal(t, statement.KindEarning, base.Kind)

	inss := findLine(t, result, statement.CodeSocialSecurity)
	assert.Equal(t, 253.41, inss.Discount)
	assert.Equal(t, "12.00%", inss.Reference)
	assert.Equal(t, "alíquota efetiva 8.45%", inss.Note)

	irrf := findLine(t, result, statement.CodeIncomeTax)
	assert.Equal(t, 17.83, irrf.Discount)
	assert.Equal(t, "15.00%", irrf.Reference)
	assert.Equal(t, "alíquota efetiva 0.65%", irrf.Note)

	assert.Equal(t, 3000.0, result.TotalEarnings)
	assert.Equal(t, 271.24, result.TotalDiscounts)
	assert.Equal(t, 2728.76, result.NetPay)
	assert.Equal(t, 240.0, result.FGTSDeposit)

	assert.Equal(t, 3000.0, result.Bases.SocialSecurity)
	assert.Equal(t, 2746.59, result.Bases.IncomeTax)
	assert.Equal(t, 3000.0, result.Bases.SeveranceFund)
}

func TestBuild_ZeroSalaryStatement(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{})

	// Base salary and INSS rows are always present, everything else is
	// suppressed at zero.
	assert.Len(t, result.Lines, 2)

	base := result.Lines[0]
	assert.Equal(t, statement.CodeBaseSalary, base.Code)
	assert.Equal(t, 0.0, base.Earning)

	inss := result.Lines[1]
	assert.Equal(t, statement.CodeSocialSecurity, inss.Code)
	assert.Equal(t, 0.0, inss.Discount)
	assert.Empty(t, inss.Note)

	assert.Equal(t, 0.0, result.NetPay)
	assert.Equal(t, 0.0, result.FGTSDeposit)
}

func TestBuild_OvertimeWithRestDayCompensation(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{
		BaseSalary:      2000,
		HoursDivisor:    220,
		RestDays:        4,
		WorkingDays:     26,
		Overtime50Hours: 10,
	})

	overtime := findLine(t, result, statement.CodeOvertime50)
	assert.Equal(t, 136.36, overtime.Earning)
	assert.Equal(t, "10.00h", overtime.Reference)

	dsr := findLine(t, result, statement.CodeDSROvertime)
	assert.Equal(t, 20.98, dsr.Earning)
	assert.Equal(t, "4d", dsr.Reference)

	assert.Equal(t, 2157.34, result.TotalEarnings)

	inss := findLine(t, result, statement.CodeSocialSecurity)
	assert.Equal(t, 171.39, inss.Discount)

	// The income-tax base falls in the exemption band, so the row is absent.
	assert.False(t, hasLine(result, statement.CodeIncomeTax))

	assert.Equal(t, 1985.95, result.NetPay)
	assert.Equal(t, 172.59, result.FGTSDeposit)
}

func TestBuild_AllVariableEarningsAndLineOrder(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{
		BaseSalary:           2200,
		HoursDivisor:         220,
		RestDays:             5,
		WorkingDays:          25,
		NightShiftHours:      10,
		Overtime50Hours:      5,
		NightOvertime70Hours: 2,
		HolidayWorkedHours:   8,
	})

	wantOrder := []string{
		statement.CodeBaseSalary,
		statement.CodeNightShift,
		statement.CodeOvertime50,
		statement.CodeNightOvertime,
		statement.CodeHolidayWorked,
		statement.CodeDSROvertime,
		statement.CodeDSRNightShift,
		statement.CodeSocialSecurity,
	}
	gotOrder := make([]string, len(result.Lines))
	for i, line := range result.Lines {
		gotOrder[i] = line.Code
	}
	assert.Equal(t, wantOrder, gotOrder)

	assert.Equal(t, 20.0, findLine(t, result, statement.CodeNightShift).Earning)
	assert.Equal(t, 75.0, findLine(t, result, statement.CodeOvertime50).Earning)
	assert.Equal(t, 40.8, findLine(t, result, statement.CodeNightOvertime).Earning)
	assert.Equal(t, 160.0, findLine(t, result, statement.CodeHolidayWorked).Earning)

	// DSR over the two overtime categories together, night shift on its own;
	// holiday pay already includes rest compensation.
	assert.Equal(t, 23.16, findLine(t, result, statement.CodeDSROvertime).Earning)
	assert.Equal(t, 4.0, findLine(t, result, statement.CodeDSRNightShift).Earning)

	assert.Equal(t, 2522.96, result.TotalEarnings)
	assert.Equal(t, 204.3, findLine(t, result, statement.CodeSocialSecurity).Discount)
	assert.Equal(t, 2318.66, result.NetPay)
}

func TestBuild_RestDayCompensationRules(t *testing.T) {
	t.Run("no rest days suppresses both rows", func(t *testing.T) {
		result := newBuilder().Build(statement.Inputs{
			BaseSalary:      2000,
			HoursDivisor:    220,
			WorkingDays:     26,
			Overtime50Hours: 10,
			NightShiftHours: 10,
		})

		assert.False(t, hasLine(result, statement.CodeDSROvertime))
		assert.False(t, hasLine(result, statement.CodeDSRNightShift))
	})

	t.Run("no variable earnings suppresses both rows", func(t *testing.T) {
		result := newBuilder().Build(statement.Inputs{
			BaseSalary:   2000,
			HoursDivisor: 220,
			RestDays:     4,
			WorkingDays:  26,
		})

		assert.False(t, hasLine(result, statement.CodeDSROvertime))
		assert.False(t, hasLine(result, statement.CodeDSRNightShift))
	})

	t.Run("holiday hours alone earn no rest compensation", func(t *testing.T) {
		result := newBuilder().Build(statement.Inputs{
			BaseSalary:         2000,
			HoursDivisor:       220,
			RestDays:           4,
			WorkingDays:        26,
			HolidayWorkedHours: 8,
		})

		assert.True(t, hasLine(result, statement.CodeHolidayWorked))
		assert.False(t, hasLine(result, statement.CodeDSROvertime))
		assert.False(t, hasLine(result, statement.CodeDSRNightShift))
	})

	t.Run("non-positive working days floor to one", func(t *testing.T) {
		result := newBuilder().Build(statement.Inputs{
			BaseSalary:      2200,
			HoursDivisor:    220,
			RestDays:        2,
			Overtime50Hours: 10,
		})

		// 150.00 of overtime prorated over a single working day.
		assert.Equal(t, 300.0, findLine(t, result, statement.CodeDSROvertime).Earning)
	})
}

func TestBuild_DivisorGuard(t *testing.T) {
	withDefault := newBuilder().Build(statement.Inputs{
		BaseSalary:      2200,
		HoursDivisor:    220,
		Overtime50Hours: 10,
	})
	withZero := newBuilder().Build(statement.Inputs{
		BaseSalary:      2200,
		Overtime50Hours: 10,
	})

	assert.Equal(t,
		findLine(t, withDefault, statement.CodeOvertime50).Earning,
		findLine(t, withZero, statement.CodeOvertime50).Earning,
	)
	assert.Equal(t, 150.0, findLine(t, withZero, statement.CodeOvertime50).Earning)
}

func TestBuild_ManualDiscountsOrderAndPassthrough(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{
		BaseSalary:          3000,
		HoursDivisor:        220,
		AdvanceDiscount:     1200,
		HealthPlanDiscount:  150.50,
		DentalPlanDiscount:  35.90,
		MealVoucherDiscount: 88,
		OtherDiscounts:      10.01,
	})

	wantTail := []string{
		statement.CodeAdvance,
		statement.CodeHealthPlan,
		statement.CodeDentalPlan,
		statement.CodeMealVoucher,
		statement.CodeOtherDiscounts,
	}
	tail := result.Lines[len(result.Lines)-len(wantTail):]
	for i, line := range tail {
		assert.Equal(t, wantTail[i], line.Code)
		assert.Equal(t, statement.KindDiscount, line.Kind)
		assert.Equal(t, "-", line.Reference)
	}

	assert.Equal(t, 1200.0, findLine(t, result, statement.CodeAdvance).Discount)
	assert.Equal(t, 150.50, findLine(t, result, statement.CodeHealthPlan).Discount)
	assert.Equal(t, 35.90, findLine(t, result, statement.CodeDentalPlan).Discount)
	assert.Equal(t, 88.0, findLine(t, result, statement.CodeMealVoucher).Discount)
	assert.Equal(t, 10.01, findLine(t, result, statement.CodeOtherDiscounts).Discount)
}

func TestBuild_ZeroValuedDiscountsAreSuppressed(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{
		BaseSalary:         3000,
		HoursDivisor:       220,
		HealthPlanDiscount: 150,
	})

	assert.True(t, hasLine(result, statement.CodeHealthPlan))
	assert.False(t, hasLine(result, statement.CodeAdvance))
	assert.False(t, hasLine(result, statement.CodeDentalPlan))
	assert.False(t, hasLine(result, statement.CodeMealVoucher))
	assert.False(t, hasLine(result, statement.CodeOtherDiscounts))
}

func TestBuild_SeveranceFundIgnoresAdvance(t *testing.T) {
	without := newBuilder().Build(statement.Inputs{
		BaseSalary:   3000,
		HoursDivisor: 220,
	})
	with := newBuilder().Build(statement.Inputs{
		BaseSalary:      3000,
		HoursDivisor:    220,
		AdvanceDiscount: 1500,
	})

	assert.Equal(t, without.FGTSDeposit, with.FGTSDeposit)
	assert.Equal(t, 240.0, with.FGTSDeposit)
	assert.Equal(t, without.Bases.SeveranceFund, with.Bases.SeveranceFund)
}

func TestBuild_NetPayMatchesLineAggregation(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{
		BaseSalary:           4100,
		HoursDivisor:         220,
		RestDays:             5,
		WorkingDays:          25,
		Dependents:           1,
		NightShiftHours:      12,
		Overtime50Hours:      7,
		NightOvertime70Hours: 3,
		HolidayWorkedHours:   4,
		AdvanceDiscount:      800,
		HealthPlanDiscount:   210.35,
	})

	var earnings, discounts float64
	for _, line := range result.Lines {
		earnings += line.Earning
		discounts += line.Discount
		if line.Kind == statement.KindEarning {
			assert.Zero(t, line.Discount)
		} else {
			assert.Zero(t, line.Earning)
		}
	}

	assert.InDelta(t, earnings, result.TotalEarnings, 0.005)
	assert.InDelta(t, discounts, result.TotalDiscounts, 0.005)
	assert.InDelta(t, result.TotalEarnings-result.TotalDiscounts, result.NetPay, 0.005)
}

func TestBuild_DependentsSuppressIncomeTax(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{
		BaseSalary:   3000,
		HoursDivisor: 220,
		Dependents:   4,
	})

	assert.False(t, hasLine(result, statement.CodeIncomeTax))
	assert.Equal(t, 2746.59, result.Bases.IncomeTax)
}

func TestBuild_NegativeInputsAreClamped(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{
		BaseSalary:      -1000,
		HoursDivisor:    220,
		RestDays:        -3,
		Overtime50Hours: -5,
		AdvanceDiscount: -50,
	})

	base := findLine(t, result, statement.CodeBaseSalary)
	assert.Equal(t, 0.0, base.Earning)
	assert.False(t, hasLine(result, statement.CodeOvertime50))
	assert.False(t, hasLine(result, statement.CodeAdvance))
	assert.Equal(t, 0.0, result.NetPay)
}

func TestBuild_SocialSecurityBaseIsCappedAtCeiling(t *testing.T) {
	result := newBuilder().Build(statement.Inputs{
		BaseSalary:   12000,
		HoursDivisor: 220,
	})

	assert.Equal(t, 8157.41, result.Bases.SocialSecurity)
	assert.Equal(t, 12000.0, result.Bases.SeveranceFund)
}

func TestBuild_IsDeterministic(t *testing.T) {
	in := statement.Inputs{
		BaseSalary:      3517.42,
		HoursDivisor:    220,
		RestDays:        5,
		WorkingDays:     25,
		Overtime50Hours: 9.5,
		NightShiftHours: 22,
	}

	first := newBuilder().Build(in)
	second := newBuilder().Build(in)

	assert.Equal(t, first, second)
}
