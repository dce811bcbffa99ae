package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwahome/dukapos/internal/domain/entity"
	"github.com/fwahome/dukapos/internal/domain/enum"
	infraRepo "github.com/fwahome/dukapos/internal/infrastructure/repository"
)

func (env *testEnv) seedSale(t *testing.T, invoiceNo string, at time.Time, totalCents int64, units int) {
	t.Helper()

	sale := &entity.Sale{
		InvoiceNo:      invoiceNo,
		SaleDate:       at,
		SubTotal:       totalCents,
		Total:          totalCents,
		PaymentMethod:  enum.PaymentMethodCash,
		AmountReceived: totalCents,
		Items: []entity.SaleItem{
			{ProductID: 1, Code: "PRD-X", Name: "Item", UnitPrice: totalCents / int64(units), Quantity: units, Total: totalCents},
		},
	}
	require.NoError(t, env.db.Create(sale).Error)
}

func newReportService(env *testEnv, anchor enum.ReportAnchor) *ReportService {
	return NewReportService(infraRepo.NewSaleRepository(env.db), anchor)
}

func TestDailyReportAggregates(t *testing.T) {
	env := newTestEnv(t)
	reports := newReportService(env, enum.ReportAnchorReference)

	day := time.Date(2026, 5, 12, 0, 0, 0, 0, time.Local)
	env.seedSale(t, "INV-1", day.Add(9*time.Hour), 10000, 2)
	env.seedSale(t, "INV-2", day.Add(18*time.Hour), 5000, 1)
	env.seedSale(t, "INV-3", day.AddDate(0, 0, 1), 99900, 3)

	report, err := reports.SalesReport(context.Background(), &ReportInput{
		Period:    enum.ReportPeriodDaily,
		Reference: day.Add(13 * time.Hour),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 15000, report.TotalSales)
	assert.Equal(t, 2, report.TransactionCount)
	assert.Equal(t, 3, report.ItemsSold)
	assert.Len(t, report.Transactions, 2)
}

func TestDailyReportEmptyDayIsZeroed(t *testing.T) {
	env := newTestEnv(t)
	reports := newReportService(env, enum.ReportAnchorReference)

	report, err := reports.SalesReport(context.Background(), &ReportInput{
		Period:    enum.ReportPeriodDaily,
		Reference: time.Date(2026, 5, 12, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	assert.Zero(t, report.TotalSales)
	assert.Zero(t, report.TransactionCount)
	assert.Zero(t, report.ItemsSold)
	assert.Empty(t, report.Transactions)
}

func TestWeeklyReportAnchorsToReferenceDate(t *testing.T) {
	env := newTestEnv(t)
	reports := newReportService(env, enum.ReportAnchorReference)

	// 2026-05-12 is a Tuesday; its Sun-Sat week is 05-10 through 05-16
	ref := time.Date(2026, 5, 12, 10, 0, 0, 0, time.Local)
	env.seedSale(t, "INV-SUN", time.Date(2026, 5, 10, 8, 0, 0, 0, time.Local), 1000, 1)
	env.seedSale(t, "INV-SAT", time.Date(2026, 5, 16, 23, 0, 0, 0, time.Local), 2000, 1)
	env.seedSale(t, "INV-NEXT", time.Date(2026, 5, 17, 1, 0, 0, 0, time.Local), 4000, 1)

	report, err := reports.SalesReport(context.Background(), &ReportInput{
		Period:    enum.ReportPeriodWeekly,
		Reference: ref,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 3000, report.TotalSales)
	assert.Equal(t, 2, report.TransactionCount)
	assert.Equal(t, time.Sunday, report.From.Weekday())
	assert.Equal(t, time.Saturday, report.To.Weekday())
}

func TestMonthlyReportCoversCalendarMonth(t *testing.T) {
	env := newTestEnv(t)
	reports := newReportService(env, enum.ReportAnchorReference)

	env.seedSale(t, "INV-FEB", time.Date(2026, 2, 28, 12, 0, 0, 0, time.Local), 1000, 1)
	env.seedSale(t, "INV-MAR", time.Date(2026, 3, 1, 0, 30, 0, 0, time.Local), 2000, 1)

	report, err := reports.SalesReport(context.Background(), &ReportInput{
		Period:    enum.ReportPeriodMonthly,
		Reference: time.Date(2026, 2, 10, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1000, report.TotalSales)
	assert.Equal(t, 1, report.TransactionCount)
}

func TestCustomReportInclusiveBounds(t *testing.T) {
	env := newTestEnv(t)
	reports := newReportService(env, enum.ReportAnchorReference)

	env.seedSale(t, "INV-1", time.Date(2026, 4, 1, 0, 0, 1, 0, time.Local), 1000, 1)
	env.seedSale(t, "INV-2", time.Date(2026, 4, 3, 23, 59, 0, 0, time.Local), 2000, 1)
	env.seedSale(t, "INV-3", time.Date(2026, 4, 4, 0, 0, 1, 0, time.Local), 4000, 1)

	report, err := reports.SalesReport(context.Background(), &ReportInput{
		Period: enum.ReportPeriodCustom,
		Start:  time.Date(2026, 4, 1, 15, 0, 0, 0, time.Local),
		End:    time.Date(2026, 4, 3, 2, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 3000, report.TotalSales)
}

func TestCustomReportRejectsInvertedRange(t *testing.T) {
	env := newTestEnv(t)
	reports := newReportService(env, enum.ReportAnchorReference)

	_, err := reports.SalesReport(context.Background(), &ReportInput{
		Period: enum.ReportPeriodCustom,
		Start:  time.Date(2026, 4, 10, 0, 0, 0, 0, time.Local),
		End:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local),
	})
	assert.Error(t, err)
}

func TestReportRejectsUnknownPeriod(t *testing.T) {
	env := newTestEnv(t)
	reports := newReportService(env, enum.ReportAnchorReference)

	_, err := reports.SalesReport(context.Background(), &ReportInput{
		Period:    enum.ReportPeriod("fortnightly"),
		Reference: time.Now(),
	})
	assert.Error(t, err)
}

func TestWeeklyReportNowAnchorIgnoresReference(t *testing.T) {
	env := newTestEnv(t)
	reports := newReportService(env, enum.ReportAnchorNow)

	// A sale this instant falls in the current week even when the
	// reference points at a week long past
	env.seedSale(t, "INV-NOW", time.Now(), 1000, 1)

	report, err := reports.SalesReport(context.Background(), &ReportInput{
		Period:    enum.ReportPeriodWeekly,
		Reference: time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1000, report.TotalSales)
}
