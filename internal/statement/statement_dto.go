package statement

import (
	"math"

	"holerite/internal/tax"
)

// ComputeStatementRequest carries the full input set for one computation.
// When period is present, rest and working days come from the calendar;
// rest_days may still be sent to override the counted value, in which case
// working days are re-derived from the month total.
type ComputeStatementRequest struct {
	Period string `json:"period" binding:"omitempty,len=7"`

	BaseSalary   float64 `json:"base_salary" binding:"min=0"`
	HoursDivisor float64 `json:"hours_divisor" binding:"min=0"`
	RestDays     *int    `json:"rest_days" binding:"omitempty,min=0"`
	WorkingDays  *int    `json:"working_days" binding:"omitempty,min=0"`
	Dependents   int     `json:"dependents" binding:"min=0"`

	NightShiftHours      float64 `json:"night_shift_hours" binding:"min=0"`
	Overtime50Hours      float64 `json:"overtime_50_hours" binding:"min=0"`
	NightOvertime70Hours float64 `json:"night_overtime_70_hours" binding:"min=0"`
	HolidayWorkedHours   float64 `json:"holiday_worked_hours" binding:"min=0"`

	AdvanceDiscount     float64 `json:"advance_discount" binding:"min=0"`
	HealthPlanDiscount  float64 `json:"health_plan_discount" binding:"min=0"`
	DentalPlanDiscount  float64 `json:"dental_plan_discount" binding:"min=0"`
	MealVoucherDiscount float64 `json:"meal_voucher_discount" binding:"min=0"`
	OtherDiscounts      float64 `json:"other_discounts" binding:"min=0"`
}

type LineItemResponse struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Reference   string  `json:"reference"`
	Earning     float64 `json:"earning"`
	Discount    float64 `json:"discount"`
	Kind        string  `json:"kind"`
	Note        string  `json:"note,omitempty"`
}

type BasesResponse struct {
	SocialSecurity float64 `json:"social_security"`
	IncomeTax      float64 `json:"income_tax"`
	SeveranceFund  float64 `json:"severance_fund"`
}

type StatementResponse struct {
	Lines          []LineItemResponse `json:"lines"`
	TotalEarnings  float64            `json:"total_earnings"`
	TotalDiscounts float64            `json:"total_discounts"`
	NetPay         float64            `json:"net_pay"`
	FGTSDeposit    float64            `json:"fgts_deposit"`
	Bases          BasesResponse      `json:"bases"`
	RestDays       int                `json:"rest_days"`
	WorkingDays    int                `json:"working_days"`
}

type BracketResponse struct {
	UpperBound  *float64 `json:"upper_bound"` // null on the unbounded bracket
	RatePercent float64  `json:"rate_percent"`
	Adjustment  float64  `json:"adjustment"`
}

type TaxTablesResponse struct {
	SocialSecurity     []BracketResponse `json:"social_security"`
	IncomeTax          []BracketResponse `json:"income_tax"`
	DependentDeduction float64           `json:"dependent_deduction"`
	StandardDivisor    float64           `json:"standard_divisor"`
	FGTSRatePercent    float64           `json:"fgts_rate_percent"`
}

func mapToResponse(result Result, in Inputs) StatementResponse {
	lines := make([]LineItemResponse, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = LineItemResponse{
			Code:        line.Code,
			Description: line.Description,
			Reference:   line.Reference,
			Earning:     line.Earning,
			Discount:    line.Discount,
			Kind:        line.Kind,
			Note:        line.Note,
		}
	}

	return StatementResponse{
		Lines:          lines,
		TotalEarnings:  result.TotalEarnings,
		TotalDiscounts: result.TotalDiscounts,
		NetPay:         result.NetPay,
		FGTSDeposit:    result.FGTSDeposit,
		Bases: BasesResponse{
			SocialSecurity: result.Bases.SocialSecurity,
			IncomeTax:      result.Bases.IncomeTax,
			SeveranceFund:  result.Bases.SeveranceFund,
		},
		RestDays:    in.RestDays,
		WorkingDays: in.WorkingDays,
	}
}

func mapTableToResponse(table tax.Table) []BracketResponse {
	resp := make([]BracketResponse, len(table))
	for i, bracket := range table {
		row := BracketResponse{
			RatePercent: round2(bracket.Rate * 100),
			Adjustment:  bracket.Adjustment,
		}
		if !math.IsInf(bracket.UpperBound, 1) {
			bound := bracket.UpperBound
			row.UpperBound = &bound
		}
		resp[i] = row
	}
	return resp
}
