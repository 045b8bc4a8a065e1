package statement

import (
	"net/http"

	"holerite/internal/shared/apperror"
	"holerite/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Compute(c *gin.Context) {
	var req ComputeStatementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, httpErr.Code, httpErr.Message, err.Error())
		return
	}

	resp, err := h.service.Compute(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) TaxTables(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.TaxTables())
}
