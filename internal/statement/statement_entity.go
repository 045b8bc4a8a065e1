package statement

const (
	KindEarning  = "EARNING"
	KindDiscount = "DISCOUNT"
)

// Line item codes, in statement order.
const (
	CodeBaseSalary     = "0010"
	CodeNightShift     = "0020"
	CodeOvertime50     = "0050"
	CodeNightOvertime  = "0070"
	CodeHolidayWorked  = "0080"
	CodeDSROvertime    = "0055"
	CodeDSRNightShift  = "0025"
	CodeSocialSecurity = "9010"
	CodeIncomeTax      = "9020"
	CodeAdvance        = "9030"
	CodeHealthPlan     = "9040"
	CodeDentalPlan     = "9050"
	CodeMealVoucher    = "9060"
	CodeOtherDiscounts = "9090"
)

// Inputs is the full parameter set for one statement computation. All numeric
// fields are expected to be non-negative; Build clamps negatives to zero.
type Inputs struct {
	BaseSalary   float64
	HoursDivisor float64
	RestDays     int
	WorkingDays  int
	Dependents   int

	NightShiftHours      float64
	Overtime50Hours      float64
	NightOvertime70Hours float64
	HolidayWorkedHours   float64

	AdvanceDiscount     float64
	HealthPlanDiscount  float64
	DentalPlanDiscount  float64
	MealVoucherDiscount float64
	OtherDiscounts      float64
}

// LineItem is one row of the statement body. Earning rows carry a zero
// discount and vice versa. Immutable once produced.
type LineItem struct {
	Code        string
	Description string
	Reference   string
	Earning     float64
	Discount    float64
	Kind        string
	Note        string
}

// Bases records the three taxable bases the statement was computed over.
type Bases struct {
	SocialSecurity float64
	IncomeTax      float64
	SeveranceFund  float64
}

// Result is a fully computed statement. It is constructed fresh on every
// computation and never mutated afterwards.
type Result struct {
	Lines          []LineItem
	TotalEarnings  float64
	TotalDiscounts float64
	NetPay         float64
	FGTSDeposit    float64
	Bases          Bases
}
