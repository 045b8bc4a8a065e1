package statement

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	statements := r.Group("/statements")
	{
		statements.POST("/compute", handler.Compute)
		statements.GET("/tax-tables", handler.TaxTables)
	}
}
