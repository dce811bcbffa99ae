package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/enum"
	"github.com/fwahome/dukapos/internal/domain/repository"
	"github.com/fwahome/dukapos/pkg/apperror"
)

// SalesReport is the aggregate over all sales in a resolved date range.
// TotalSales is cents; the marshaler exposes it as a decimal.
type SalesReport struct {
	Period           enum.ReportPeriod `json:"period"`
	From             time.Time         `json:"from"`
	To               time.Time         `json:"to"`
	TotalSales       int64             `json:"-"`
	TransactionCount int               `json:"transaction_count"`
	ItemsSold        int               `json:"items_sold"`
	Transactions     []entity.Sale     `json:"transactions"`
}

// MarshalJSON converts cents to a decimal amount for API responses
func (r SalesReport) MarshalJSON() ([]byte, error) {
	type Alias SalesReport
	return json.Marshal(&struct {
		Alias
		TotalSales float64 `json:"total_sales"`
	}{
		Alias:      Alias(r),
		TotalSales: float64(r.TotalSales) / 100,
	})
}

// ReportService aggregates sales over date ranges
type ReportService struct {
	saleRepo repository.SaleRepository
	anchor   enum.ReportAnchor
}

// NewReportService creates a new report service. The anchor decides
// whether week, month and year ranges follow the selected reference date
// or the wall clock.
func NewReportService(saleRepo repository.SaleRepository, anchor enum.ReportAnchor) *ReportService {
	if anchor != enum.ReportAnchorNow {
		anchor = enum.ReportAnchorReference
	}
	return &ReportService{
		saleRepo: saleRepo,
		anchor:   anchor,
	}
}

// ReportInput represents the report input. Reference is the user-selected
// date; Start and End apply only to the custom period.
type ReportInput struct {
	Period    enum.ReportPeriod
	Reference time.Time
	Start     time.Time
	End       time.Time
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// resolveRange turns a period and reference into inclusive day bounds
func (s *ReportService) resolveRange(input *ReportInput) (time.Time, time.Time, error) {
	anchor := input.Reference
	if s.anchor == enum.ReportAnchorNow {
		anchor = time.Now()
	}

	switch input.Period {
	case enum.ReportPeriodDaily:
		// Daily always follows the selected date; anchoring only moves
		// the longer ranges.
		return startOfDay(input.Reference), endOfDay(input.Reference), nil
	case enum.ReportPeriodWeekly:
		// Weeks run Sunday through Saturday
		weekStart := startOfDay(anchor).AddDate(0, 0, -int(anchor.Weekday()))
		return weekStart, endOfDay(weekStart.AddDate(0, 0, 6)), nil
	case enum.ReportPeriodMonthly:
		monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return monthStart, endOfDay(monthStart.AddDate(0, 1, -1)), nil
	case enum.ReportPeriodYearly:
		yearStart := time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, anchor.Location())
		return yearStart, endOfDay(time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, anchor.Location())), nil
	case enum.ReportPeriodCustom:
		if input.End.Before(input.Start) {
			return time.Time{}, time.Time{}, apperror.NewValidationError([]apperror.FieldError{
				{Field: "end", Message: "End date must not be before start date"},
			})
		}
		return startOfDay(input.Start), endOfDay(input.End), nil
	default:
		return time.Time{}, time.Time{}, apperror.NewValidationError([]apperror.FieldError{
			{Field: "period", Message: "Period must be daily, weekly, monthly, yearly or custom"},
		})
	}
}

// SalesReport aggregates the sales in the resolved range. An empty range
// yields a zeroed report, not an error.
func (s *ReportService) SalesReport(ctx context.Context, input *ReportInput) (*SalesReport, error) {
	from, to, err := s.resolveRange(input)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := &SalesReport{
		Period:       input.Period,
		From:         from,
		To:           to,
		Transactions: sales,
	}
	for i := range sales {
		report.TotalSales += sales[i].Total
		report.TransactionCount++
		report.ItemsSold += sales[i].TotalQuantity()
	}

	return report, nil
}

// TopProducts returns the best sellers by units sold across all sales
func (s *ReportService) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	if limit < 1 {
		limit = 5
	}
	return s.saleRepo.TopProducts(ctx, limit)
}
