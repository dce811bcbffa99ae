package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fwahome/dukapos/internal/domain/repository"
)

// DailyRevenue is one point of the dashboard revenue series
type DailyRevenue struct {
	Date    string `json:"date"`
	Revenue int64  `json:"-"`
}

// MarshalJSON converts cents to a decimal amount for API responses
func (d DailyRevenue) MarshalJSON() ([]byte, error) {
	type Alias DailyRevenue
	return json.Marshal(&struct {
		Alias
		Revenue float64 `json:"revenue"`
	}{
		Alias:   Alias(d),
		Revenue: float64(d.Revenue) / 100,
	})
}

// DashboardSummary is the landing-page overview
type DashboardSummary struct {
	ProductCount      int64                         `json:"product_count"`
	LowStockCount     int                           `json:"low_stock_count"`
	TodayRevenue      int64                         `json:"-"`
	TodayTransactions int                           `json:"today_transactions"`
	RevenueSeries     []DailyRevenue                `json:"revenue_series"`
	TopProducts       []repository.TopProductResult `json:"top_products"`
}

// MarshalJSON converts cents to a decimal amount for API responses
func (d DashboardSummary) MarshalJSON() ([]byte, error) {
	type Alias DashboardSummary
	return json.Marshal(&struct {
		Alias
		TodayRevenue float64 `json:"today_revenue"`
	}{
		Alias:        Alias(d),
		TodayRevenue: float64(d.TodayRevenue) / 100,
	})
}

// DashboardService assembles the overview shown on the landing page
type DashboardService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// GetSummary builds the dashboard: catalog counts, today's figures, a
// seven-day revenue series and the top sellers.
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	weekStart := startOfDay(now.AddDate(0, 0, -6))
	sales, err := s.saleRepo.FindByDateRange(ctx, weekStart, endOfDay(now))
	if err != nil {
		return nil, err
	}

	series := make([]DailyRevenue, 7)
	for i := range series {
		series[i].Date = weekStart.AddDate(0, 0, i).Format("2006-01-02")
	}

	summary := &DashboardSummary{
		ProductCount:  productCount,
		LowStockCount: len(lowStock),
		RevenueSeries: series,
	}

	today := startOfDay(now)
	for i := range sales {
		day := startOfDay(sales[i].SaleDate)
		idx := int(day.Sub(weekStart).Hours() / 24)
		if idx >= 0 && idx < len(series) {
			series[idx].Revenue += sales[i].Total
		}
		if !day.Before(today) {
			summary.TodayRevenue += sales[i].Total
			summary.TodayTransactions++
		}
	}

	topProducts, err := s.saleRepo.TopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}
	summary.TopProducts = topProducts

	return summary, nil
}
