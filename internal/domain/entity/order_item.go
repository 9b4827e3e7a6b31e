package entity

import "github.com/shopspring/decimal"

// OrderItem es una línea de una orden de compra. ProductID puede ser nil para
// productos descontinuados o entradas ad-hoc; ProductName conserva el nombre
// histórico en ese caso. Inmutable una vez creada.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   *string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}
