package events

import "time"

const StatementComputedTopic = "payroll.statement.computed.v1"

// StatementComputedEvent is the audit record emitted after each successful
// statement computation. It carries aggregates only, never the line items.
type StatementComputedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	Period      string    `json:"period,omitempty"`
	GrossTotal  float64   `json:"gross_total"`
	NetPay      float64   `json:"net_pay"`
	FGTSDeposit float64   `json:"fgts_deposit"`
	CacheHit    bool      `json:"cache_hit"`
	OccurredAt  time.Time `json:"occurred_at"`
}
