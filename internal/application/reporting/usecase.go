// Package reporting contiene los casos de uso de solo lectura: reporte de
// ventas con ranking de más vendidos y el dashboard de la tienda.
package reporting

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/supermarket-pos/internal/application/dto"
	"github.com/tu-usuario/supermarket-pos/internal/domain/repository"
)

const (
	bestSellersLimit   = 10 // tamaño del ranking de más vendidos
	dashboardListLimit = 5  // filas en los widgets del dashboard
)

// ReportUseCase agrega ventas confirmadas en resúmenes y rankings.
//
// Las consultas no comparten snapshot: un reporte que cruza una venta en vuelo
// puede ver una vista parcial. Es aceptable para reportería consultiva y está
// documentado como tal; no debe usarse como cierre contable.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// GetSalesReport resume las ventas del rango (inclusivo, bordes opcionales):
// filas por venta con su utilidad, totales agregados y el top 10 de productos
// por cantidad vendida.
//
// La utilidad por venta es Σ (unit_price − products.cost) × quantity con el
// costo ACTUAL del producto, una consulta por venta (comportamiento heredado).
func (uc *ReportUseCase) GetSalesReport(ctx context.Context, dates repository.DateRange) (*dto.SalesReportResponse, error) {
	sales, err := uc.reportRepo.ListSales(ctx, dates)
	if err != nil {
		return nil, fmt.Errorf("reporte: listar ventas: %w", err)
	}

	resp := &dto.SalesReportResponse{
		Sales:       make([]dto.SaleReportRow, 0, len(sales)),
		TotalSales:  decimal.Zero,
		TotalProfit: decimal.Zero,
	}
	for _, s := range sales {
		profit, err := uc.reportRepo.GetSaleProfit(ctx, s.ID)
		if err != nil {
			return nil, fmt.Errorf("reporte: utilidad de venta %s: %w", s.ID, err)
		}
		resp.Sales = append(resp.Sales, dto.SaleReportRow{
			ID:            s.ID,
			Date:          s.Date,
			CashierName:   s.CashierName,
			TotalAmount:   s.TotalAmount,
			PaymentMethod: s.PaymentMethod,
			ItemCount:     s.ItemCount,
			Profit:        profit,
		})
		resp.TotalSales = resp.TotalSales.Add(s.TotalAmount)
		resp.TotalItems += s.ItemCount
		resp.TotalProfit = resp.TotalProfit.Add(profit)
	}

	best, err := uc.reportRepo.GetBestSellers(ctx, dates, bestSellersLimit)
	if err != nil {
		return nil, fmt.Errorf("reporte: más vendidos: %w", err)
	}
	resp.BestSellers = make([]dto.BestSellerDTO, 0, len(best))
	for _, b := range best {
		resp.BestSellers = append(resp.BestSellers, dto.BestSellerDTO{
			ProductID:     b.ProductID,
			Name:          b.Name,
			TotalQuantity: b.TotalQuantity,
			TotalRevenue:  b.TotalRevenue,
			TotalProfit:   b.TotalProfit,
		})
	}
	return resp, nil
}

// GetDashboard construye los indicadores del tablero principal.
//
// Cinco consultas independientes lanzadas en paralelo: contadores de
// productos, bajo stock y por vencer, más las listas de ventas recientes y
// productos bajos.
func (uc *ReportUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	type countResult struct {
		n   int64
		err error
	}
	type recentResult struct {
		rows []repository.RecentSale
		err  error
	}
	type lowResult struct {
		rows []repository.LowStockItem
		err  error
	}

	productsCh := make(chan countResult, 1)
	lowCountCh := make(chan countResult, 1)
	expiringCh := make(chan countResult, 1)
	recentCh := make(chan recentResult, 1)
	lowItemsCh := make(chan lowResult, 1)

	go func() {
		n, err := uc.reportRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountLowStock(ctx)
		lowCountCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountExpiringSoon(ctx)
		expiringCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.reportRepo.RecentSales(ctx, dashboardListLimit)
		recentCh <- recentResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.LowStockItems(ctx, dashboardListLimit)
		lowItemsCh <- lowResult{rows, err}
	}()

	products := <-productsCh
	lowCount := <-lowCountCh
	expiring := <-expiringCh
	recent := <-recentCh
	lowItems := <-lowItemsCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: contar productos: %w", products.err)
	}
	if lowCount.err != nil {
		return nil, fmt.Errorf("dashboard: contar bajo stock: %w", lowCount.err)
	}
	if expiring.err != nil {
		return nil, fmt.Errorf("dashboard: contar por vencer: %w", expiring.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: ventas recientes: %w", recent.err)
	}
	if lowItems.err != nil {
		return nil, fmt.Errorf("dashboard: productos bajos: %w", lowItems.err)
	}

	resp := &dto.DashboardResponse{
		ProductCount:  products.n,
		LowStockCount: lowCount.n,
		ExpiringSoon:  expiring.n,
		RecentSales:   make([]dto.DashboardRecentSale, 0, len(recent.rows)),
		LowStockItems: make([]dto.DashboardLowStockItem, 0, len(lowItems.rows)),
	}
	for _, s := range recent.rows {
		resp.RecentSales = append(resp.RecentSales, dto.DashboardRecentSale{
			ID:          s.ID,
			Date:        s.Date,
			TotalAmount: s.TotalAmount,
			CashierName: s.CashierName,
		})
	}
	for _, it := range lowItems.rows {
		resp.LowStockItems = append(resp.LowStockItems, dto.DashboardLowStockItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Threshold: it.Threshold,
		})
	}
	return resp, nil
}
