package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra. La transición pending → received ocurre una sola vez.
const (
	OrderStatusPending  = "pending"
	OrderStatusReceived = "received"
)

// PurchaseOrder representa una orden de compra a un proveedor.
// TotalAmount se calcula en el servidor a partir de los precios cotizados de sus ítems.
type PurchaseOrder struct {
	ID                   string
	SupplierID           string
	OrderDate            time.Time
	ExpectedDeliveryDate *time.Time
	TotalAmount          decimal.Decimal
	Status               string
	Notes                string
}
