package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/supermarket-pos/internal/application/reporting"
	"github.com/tu-usuario/supermarket-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de reportes
// ──────────────────────────────────────────────────────────────────────────────

type memReportRepo struct {
	sales   []repository.SaleSummary
	profits map[string]decimal.Decimal // saleID → utilidad
	best    []repository.BestSellerResult

	productCount  int64
	lowStockCount int64
	expiringCount int64
	recent        []repository.RecentSale
	lowItems      []repository.LowStockItem
}

func (r *memReportRepo) ListSales(_ context.Context, dates repository.DateRange) ([]repository.SaleSummary, error) {
	var out []repository.SaleSummary
	for _, s := range r.sales {
		if dates.Start != nil && s.Date.Before(*dates.Start) {
			continue
		}
		if dates.End != nil && s.Date.After(*dates.End) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memReportRepo) GetSaleProfit(_ context.Context, saleID string) (decimal.Decimal, error) {
	return r.profits[saleID], nil
}

func (r *memReportRepo) GetBestSellers(_ context.Context, _ repository.DateRange, limit int) ([]repository.BestSellerResult, error) {
	if len(r.best) > limit {
		return r.best[:limit], nil
	}
	return r.best, nil
}

func (r *memReportRepo) CountProducts(_ context.Context) (int64, error)     { return r.productCount, nil }
func (r *memReportRepo) CountLowStock(_ context.Context) (int64, error)     { return r.lowStockCount, nil }
func (r *memReportRepo) CountExpiringSoon(_ context.Context) (int64, error) { return r.expiringCount, nil }

func (r *memReportRepo) RecentSales(_ context.Context, limit int) ([]repository.RecentSale, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

func (r *memReportRepo) LowStockItems(_ context.Context, limit int) ([]repository.LowStockItem, error) {
	if len(r.lowItems) > limit {
		return r.lowItems[:limit], nil
	}
	return r.lowItems, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Los totales del reporte son la suma de las filas: montos, ítems y utilidad.
func TestGetSalesReport_TotalesSonSumaDeFilas(t *testing.T) {
	now := time.Now()
	repo := &memReportRepo{
		sales: []repository.SaleSummary{
			{ID: "V1", Date: now, CashierName: "Cajero Uno", TotalAmount: d("50.00"), PaymentMethod: "cash", ItemCount: 5},
			{ID: "V2", Date: now, CashierName: "Cajero Uno", TotalAmount: d("17.40"), PaymentMethod: "credit_card", ItemCount: 5},
		},
		profits: map[string]decimal.Decimal{
			"V1": d("20.00"), // (10.00 − 6.00) × 5
			"V2": d("4.70"),
		},
		best: []repository.BestSellerResult{
			{ProductID: "P101", Name: "Widget", TotalQuantity: 5, TotalRevenue: d("50.00"), TotalProfit: d("20.00")},
		},
	}
	uc := reporting.NewReportUseCase(repo)

	out, err := uc.GetSalesReport(context.Background(), repository.DateRange{})
	require.NoError(t, err)

	require.Len(t, out.Sales, 2)
	assert.True(t, out.TotalSales.Equal(d("67.40")), "total = 50.00 + 17.40")
	assert.Equal(t, int64(10), out.TotalItems)
	assert.True(t, out.TotalProfit.Equal(d("24.70")), "utilidad = 20.00 + 4.70")

	rowSum := decimal.Zero
	profitSum := decimal.Zero
	for _, row := range out.Sales {
		rowSum = rowSum.Add(row.TotalAmount)
		profitSum = profitSum.Add(row.Profit)
	}
	assert.True(t, out.TotalSales.Equal(rowSum), "totalSales debe igualar Σ filas")
	assert.True(t, out.TotalProfit.Equal(profitSum), "totalProfit debe igualar Σ utilidades")

	require.Len(t, out.BestSellers, 1)
	assert.Equal(t, "P101", out.BestSellers[0].ProductID)
	assert.Equal(t, int64(5), out.BestSellers[0].TotalQuantity)
	assert.True(t, out.BestSellers[0].TotalProfit.Equal(d("20.00")),
		"utilidad del más vendido: (10.00 − 6.00) × 5 = 20.00")
}

// El rango de fechas es inclusivo y con bordes opcionales.
func TestGetSalesReport_FiltraPorRango(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := &memReportRepo{
		sales: []repository.SaleSummary{
			{ID: "vieja", Date: base.AddDate(0, -1, 0), TotalAmount: d("10.00"), ItemCount: 1},
			{ID: "dentro", Date: base, TotalAmount: d("20.00"), ItemCount: 2},
			{ID: "futura", Date: base.AddDate(0, 1, 0), TotalAmount: d("30.00"), ItemCount: 3},
		},
		profits: map[string]decimal.Decimal{"vieja": d("1"), "dentro": d("2"), "futura": d("3")},
	}
	uc := reporting.NewReportUseCase(repo)

	start := base.AddDate(0, 0, -1)
	end := base.AddDate(0, 0, 1)
	out, err := uc.GetSalesReport(context.Background(), repository.DateRange{Start: &start, End: &end})
	require.NoError(t, err)

	require.Len(t, out.Sales, 1)
	assert.Equal(t, "dentro", out.Sales[0].ID)
	assert.True(t, out.TotalSales.Equal(d("20.00")))
}

// Reporte sin ventas: totales en cero, sin filas.
func TestGetSalesReport_RangoVacio(t *testing.T) {
	uc := reporting.NewReportUseCase(&memReportRepo{profits: map[string]decimal.Decimal{}})

	out, err := uc.GetSalesReport(context.Background(), repository.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, out.Sales)
	assert.True(t, out.TotalSales.IsZero())
	assert.True(t, out.TotalProfit.IsZero())
	assert.Zero(t, out.TotalItems)
}

// El ranking de más vendidos se trunca al top 10.
func TestGetSalesReport_BestSellersTop10(t *testing.T) {
	repo := &memReportRepo{profits: map[string]decimal.Decimal{}}
	for i := 0; i < 15; i++ {
		repo.best = append(repo.best, repository.BestSellerResult{
			ProductID:     string(rune('A' + i)),
			TotalQuantity: int64(100 - i),
		})
	}
	uc := reporting.NewReportUseCase(repo)

	out, err := uc.GetSalesReport(context.Background(), repository.DateRange{})
	require.NoError(t, err)
	assert.Len(t, out.BestSellers, 10)
	// El orden viene del repositorio: cantidad descendente.
	for i := 1; i < len(out.BestSellers); i++ {
		assert.GreaterOrEqual(t, out.BestSellers[i-1].TotalQuantity, out.BestSellers[i].TotalQuantity)
	}
}

// El dashboard junta los cinco resultados en paralelo.
func TestGetDashboard(t *testing.T) {
	now := time.Now()
	repo := &memReportRepo{
		productCount:  42,
		lowStockCount: 3,
		expiringCount: 2,
		recent: []repository.RecentSale{
			{ID: "V1", Date: now, TotalAmount: d("50.00"), CashierName: "Cajero Uno"},
		},
		lowItems: []repository.LowStockItem{
			{ProductID: "P9", Name: "Jabón", Quantity: 8, Threshold: 10},
		},
	}
	uc := reporting.NewReportUseCase(repo)

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ProductCount)
	assert.Equal(t, int64(3), out.LowStockCount)
	assert.Equal(t, int64(2), out.ExpiringSoon)
	require.Len(t, out.RecentSales, 1)
	assert.Equal(t, "V1", out.RecentSales[0].ID)
	require.Len(t, out.LowStockItems, 1)
	assert.Equal(t, "Jabón", out.LowStockItems[0].Name)
}
