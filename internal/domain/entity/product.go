package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo con su cantidad en bodega.
// Quantity solo se modifica a través del StockLedger (deltas con signo);
// el resto de campos se mantienen por las operaciones CRUD del catálogo.
type Product struct {
	ID                string
	Name              string
	Description       string
	Barcode           string // único en todo el catálogo
	Price             decimal.Decimal
	Cost              decimal.Decimal
	Quantity          int64 // puede quedar negativa si las ventas exceden el stock
	CategoryID        string
	SupplierID        string
	ExpirationDate    *time.Time
	LowStockThreshold int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsLowStock indica si el producto está en o por debajo de su umbral de reorden.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}
