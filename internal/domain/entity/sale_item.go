package entity

import "github.com/shopspring/decimal"

// SaleItem es una línea de venta. UnitPrice es el precio del producto al
// momento de la venta (resuelto en el servidor, nunca enviado por el caller).
// TotalPrice = Quantity × UnitPrice.
type SaleItem struct {
	ID         string
	SaleID     string
	ProductID  string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
