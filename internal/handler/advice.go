package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vcscsvcscs/health-pathway-advisor/internal/service"
	"github.com/vcscsvcscs/health-pathway-advisor/pkg/api"
	"go.uber.org/zap"
)

// AdviceHandler implements advice API endpoints
type AdviceHandler struct {
	service *service.AdviceService
	reports *service.ReportService
	logger  *zap.Logger
}

// NewAdviceHandler creates a new AdviceHandler
func NewAdviceHandler(service *service.AdviceService, reports *service.ReportService, logger *zap.Logger) *AdviceHandler {
	return &AdviceHandler{
		service: service,
		reports: reports,
		logger:  logger,
	}
}

// PostApiV1Advice computes BMI, calorie needs and plans
func (h *AdviceHandler) PostApiV1Advice(c *gin.Context) {
	var req api.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    api.CodeValidationError,
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return
	}

	advice, err := h.service.Advise(c.Request.Context(), req.RawMetrics())
	if err != nil {
		status, body := errorResponse(err, "Failed to compute advice")
		if status == http.StatusInternalServerError {
			_ = c.Error(err)
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, api.AdviceResponse{
		RequestId:    requestUUID(c),
		AdviceResult: advice.Result,
	})
}

// PostApiV1AdviceReport renders the advice as a downloadable PDF
func (h *AdviceHandler) PostApiV1AdviceReport(c *gin.Context) {
	var req api.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    api.CodeValidationError,
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return
	}

	report, err := h.reports.GenerateReport(c.Request.Context(), req.RawMetrics())
	if err != nil {
		status, body := errorResponse(err, "Failed to generate report")
		if status == http.StatusInternalServerError {
			_ = c.Error(err)
		}
		c.JSON(status, body)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+strconv.Quote(report.Filename))
	c.Header("X-Report-ID", report.ID)
	c.Data(http.StatusOK, "application/pdf", report.Content)
}

// GetApiV1AdviceOptions lists accepted genders, activity levels, ranges and form defaults
func (h *AdviceHandler) GetApiV1AdviceOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Options())
}
