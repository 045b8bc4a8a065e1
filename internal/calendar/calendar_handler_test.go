package calendar_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"holerite/internal/calendar"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func getMonthFacts(t *testing.T, period string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/calendar/"+period, nil)
	c.Params = gin.Params{{Key: "period", Value: period}}

	calendar.NewHandler().GetMonthFacts(c)
	return w
}

func TestCalendarHandler_GetMonthFacts(t *testing.T) {
	w := getMonthFacts(t, "2025-08")

	assert.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Ok   bool                         `json:"ok"`
		Data calendar.MonthFactsResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	assert.Equal(t, calendar.MonthFactsResponse{
		Period:      "2025-08",
		TotalDays:   31,
		RestDays:    5,
		WorkingDays: 26,
	}, env.Data)
}

func TestCalendarHandler_GetMonthFacts_InvalidPeriod(t *testing.T) {
	w := getMonthFacts(t, "not-a-period")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var env struct {
		Ok    bool `json:"ok"`
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}
