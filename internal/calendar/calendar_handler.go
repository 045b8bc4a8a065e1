package calendar

import (
	"net/http"

	"holerite/internal/shared/apperror"
	"holerite/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type MonthFactsResponse struct {
	Period      string `json:"period"`
	TotalDays   int    `json:"total_days"`
	RestDays    int    `json:"rest_days"`
	WorkingDays int    `json:"working_days"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) GetMonthFacts(c *gin.Context) {
	period := c.Param("period")

	facts, err := CountMonthFacts(period)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, MonthFactsResponse{
		Period:      period,
		TotalDays:   facts.TotalDays,
		RestDays:    facts.RestDays,
		WorkingDays: facts.WorkingDays,
	})
}
