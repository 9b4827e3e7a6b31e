package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleReportRow una venta del reporte con su utilidad calculada.
type SaleReportRow struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	CashierName   string          `json:"cashier_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	ItemCount     int64           `json:"item_count"`
	Profit        decimal.Decimal `json:"profit"`
}

// BestSellerDTO fila del ranking de más vendidos (por cantidad descendente).
type BestSellerDTO struct {
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
}

// SalesReportResponse resumen de ventas de un rango de fechas.
// La utilidad usa el costo ACTUAL de cada producto, no el costo al momento de
// la venta; si los costos cambian después, las utilidades históricas se mueven.
type SalesReportResponse struct {
	Sales       []SaleReportRow `json:"sales"`
	TotalSales  decimal.Decimal `json:"total_sales"`
	TotalItems  int64           `json:"total_items"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	BestSellers []BestSellerDTO `json:"best_sellers"`
}

// DashboardRecentSale venta reciente en el dashboard.
type DashboardRecentSale struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CashierName string          `json:"cashier_name"`
}

// DashboardLowStockItem producto bajo el umbral de reorden en el dashboard.
type DashboardLowStockItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Threshold int64  `json:"threshold"`
}

// DashboardResponse indicadores del tablero principal.
type DashboardResponse struct {
	ProductCount   int64                   `json:"product_count"`
	LowStockCount  int64                   `json:"low_stock_count"`
	ExpiringSoon   int64                   `json:"expiring_soon"`
	RecentSales    []DashboardRecentSale   `json:"recent_sales"`
	LowStockItems  []DashboardLowStockItem `json:"low_stock_items"`
}
