package app

import (
	"holerite/internal/calendar"
	"holerite/internal/middleware"
	"holerite/internal/statement"
	"holerite/internal/tax"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func registerModules(
	router *gin.Engine,
	rdb *redis.Client,
	publisher statement.EventPublisher,
) {
	// --- Core ---
	builder := statement.NewBuilder(tax.DefaultConfig())

	// --- Services ---
	statementService := statement.NewService(builder, rdb, publisher)

	// --- Handlers ---
	statementHandler := statement.NewHandler(statementService)
	calendarHandler := calendar.NewHandler()

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(50, 100))
	{
		statement.RegisterRoutes(api, statementHandler)
		calendar.RegisterRoutes(api, calendarHandler)
	}
}
