package app

import (
	"context"
	"os"

	"holerite/internal/messaging/kafka/producer"
	"holerite/internal/shared/connection"
	"holerite/internal/statement"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure and registers the API routes. Redis and
// Kafka are optional: without them the service still computes, just without
// memoization or audit events.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		rdb = client
	} else {
		logger.Info("REDIS_ADDR not set, statement memoization disabled")
	}

	var publisher statement.EventPublisher
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(broker, 5)
		if err != nil {
			return err
		}
		kafkaPublisher := producer.NewPublisher(writer, zap.L(), 256)
		go kafkaPublisher.Run(context.Background())
		publisher = kafkaPublisher
	} else {
		logger.Info("KAFKA_BROKER not set, statement audit events disabled")
	}

	registerModules(router, rdb, publisher)

	return nil
}
