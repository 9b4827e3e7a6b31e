package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea solicitada en caja: producto y cantidad. El precio lo
// resuelve el servidor al momento de procesar (nunca se acepta del caller).
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// ProcessSaleRequest datos para registrar una venta.
type ProcessSaleRequest struct {
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
}

// ProcessSaleResponse resultado de una venta registrada.
type ProcessSaleResponse struct {
	SaleID      string          `json:"sale_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SaleItemResponse línea de venta en respuestas de detalle.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Barcode     string          `json:"barcode"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// SaleDetailResponse venta con sus líneas.
type SaleDetailResponse struct {
	ID            string             `json:"id"`
	Date          time.Time          `json:"date"`
	CashierID     string             `json:"cashier_id"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	PaymentMethod string             `json:"payment_method"`
	Items         []SaleItemResponse `json:"items"`
}
