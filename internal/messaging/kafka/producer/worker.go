package producer

import (
	"context"

	"go.uber.org/zap"
)

// Run drains the publish queue until the context is cancelled.
func (p *Publisher) Run(ctx context.Context) {
	log := p.logger.Named("worker")
	log.Info("statement event worker started")

	for {
		select {
		case <-ctx.Done():
			log.Info("statement event worker stopped")
			return
		case event := <-p.queue:
			if err := publishEvent(ctx, p.writer, event); err != nil {
				log.Error("publish statement event failed",
					zap.String("event_type", event.EventType),
					zap.String("request_id", event.RequestID),
					zap.Error(err),
				)
				continue
			}

			log.Info("statement event sent",
				zap.String("event_type", event.EventType),
				zap.String("request_id", event.RequestID),
			)
		}
	}
}
