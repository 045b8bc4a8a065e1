package consumer

import (
	"context"
	"encoding/json"

	"holerite/internal/bootstrap"
	"holerite/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeStatementComputed reads statement-computed events and records them
// through the audit logger.
func ConsumeStatementComputed(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.statement_computed")
	log.Info("statement computed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("statement computed consumer stopped")
				return
			}
			log.Error("fetch statement computed message failed", zap.Error(err))
			continue
		}

		var event events.StatementComputedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode statement_computed event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "STATEMENT_COMPUTED",
			Message: "payroll statement computed",
			Meta: map[string]any{
				"request_id":   event.RequestID,
				"period":       event.Period,
				"gross_total":  event.GrossTotal,
				"net_pay":      event.NetPay,
				"fgts_deposit": event.FGTSDeposit,
				"cache_hit":    event.CacheHit,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit statement computed message failed", zap.Error(err))
			continue
		}
	}
}
