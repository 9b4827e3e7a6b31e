package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden de compra. UnitPrice es el precio
// cotizado por el proveedor (no el precio de catálogo). ProductID puede ir
// vacío para entradas ad-hoc; ProductName conserva el nombre en ese caso.
type OrderItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest datos para crear una orden de compra.
type CreateOrderRequest struct {
	SupplierID       string             `json:"supplier_id"`
	Items            []OrderItemRequest `json:"items"`
	ExpectedDelivery *time.Time         `json:"expected_delivery"`
	Notes            string             `json:"notes"`
}

// CreateOrderResponse resultado de una orden creada.
type CreateOrderResponse struct {
	OrderID     string          `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      string          `json:"status"`
}

// OrderResponse orden de compra en listados.
type OrderResponse struct {
	ID                   string          `json:"id"`
	SupplierID           string          `json:"supplier_id"`
	SupplierName         string          `json:"supplier_name"`
	OrderDate            time.Time       `json:"order_date"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date,omitempty"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	Status               string          `json:"status"`
	Notes                string          `json:"notes,omitempty"`
}

// OrderItemResponse línea de orden en el detalle.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   *string         `json:"product_id"`
	ProductName string          `json:"product_name"`
	Barcode     string          `json:"barcode,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}
