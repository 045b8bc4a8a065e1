package calendar

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	months := r.Group("/calendar")
	{
		months.GET("/:period", handler.GetMonthFacts)
	}
}
