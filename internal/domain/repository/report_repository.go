package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DateRange es un rango de fechas inclusivo con bordes opcionales (nil = sin cota).
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// SaleSummary es una venta con nombre del cajero y conteo de ítems, para el reporte.
type SaleSummary struct {
	ID            string
	Date          time.Time
	CashierName   string
	TotalAmount   decimal.Decimal
	PaymentMethod string
	ItemCount     int64 // líneas de la venta, no unidades
}

// BestSellerResult es una fila del ranking de más vendidos.
type BestSellerResult struct {
	ProductID     string
	Name          string
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
	TotalProfit   decimal.Decimal
}

// LowStockItem es un producto en o bajo su umbral de reorden, para el dashboard.
type LowStockItem struct {
	ProductID string
	Name      string
	Quantity  int64
	Threshold int64
}

// RecentSale es una venta reciente, para el dashboard.
type RecentSale struct {
	ID          string
	Date        time.Time
	TotalAmount decimal.Decimal
	CashierName string
}

// ReportRepository consultas de solo lectura para reportes y dashboard.
// No abre transacciones: cada consulta ve el último estado confirmado, y un
// reporte que cruza una escritura en vuelo puede ver una vista parcial
// (aceptable para reportería consultiva).
type ReportRepository interface {
	// ListSales lista ventas del rango (inclusivo, bordes opcionales) con
	// nombre de cajero y conteo de ítems, ordenadas por fecha descendente.
	ListSales(ctx context.Context, dates DateRange) ([]SaleSummary, error)
	// GetSaleProfit calcula la utilidad de una venta con el costo ACTUAL del
	// producto: Σ (unit_price - products.cost) × quantity.
	GetSaleProfit(ctx context.Context, saleID string) (decimal.Decimal, error)
	// GetBestSellers agrupa las líneas de venta del rango por producto y
	// devuelve el top `limit` por cantidad vendida descendente.
	GetBestSellers(ctx context.Context, dates DateRange, limit int) ([]BestSellerResult, error)

	// Contadores y listas del dashboard.
	CountProducts(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
	CountExpiringSoon(ctx context.Context) (int64, error)
	RecentSales(ctx context.Context, limit int) ([]RecentSale, error)
	LowStockItems(ctx context.Context, limit int) ([]LowStockItem, error)
}
