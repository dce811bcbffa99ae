package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fwahome/dukapos/internal/application/service"
	"github.com/fwahome/dukapos/internal/domain/enum"
	"github.com/fwahome/dukapos/internal/presentation/http/dto/request"
	"github.com/fwahome/dukapos/internal/presentation/http/dto/response"
)

// ReportHandler handles reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Sales handles the sales report over a period
func (h *ReportHandler) Sales(c *gin.Context) {
	var req request.SalesReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Period is required")
		return
	}

	input := &service.ReportInput{
		Period:    enum.ReportPeriod(req.Period),
		Reference: time.Now(),
	}

	if req.Reference != "" {
		t, err := time.ParseInLocation("2006-01-02", req.Reference, time.Local)
		if err != nil {
			response.BadRequest(c, "Invalid reference date, expected YYYY-MM-DD")
			return
		}
		input.Reference = t
	}

	if input.Period == enum.ReportPeriodCustom {
		start, err := time.ParseInLocation("2006-01-02", req.Start, time.Local)
		if err != nil {
			response.BadRequest(c, "Custom reports require a start date in YYYY-MM-DD")
			return
		}
		end, err := time.ParseInLocation("2006-01-02", req.End, time.Local)
		if err != nil {
			response.BadRequest(c, "Custom reports require an end date in YYYY-MM-DD")
			return
		}
		input.Start = start
		input.End = end
	}

	report, err := h.reportService.SalesReport(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report generated successfully", report)
}

// TopProducts handles the best-sellers ranking
func (h *ReportHandler) TopProducts(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := h.reportService.TopProducts(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Top products retrieved successfully", results)
}
