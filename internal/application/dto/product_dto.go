package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest datos para crear un producto. Quantity es el stock
// inicial; después de la creación solo cambia vía ventas y recepciones.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Barcode           string          `json:"barcode"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Quantity          int64           `json:"quantity"`
	CategoryID        string          `json:"category_id"`
	SupplierID        string          `json:"supplier_id"`
	ExpirationDate    *time.Time      `json:"expiration_date"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
}

// UpdateProductRequest campos opcionales a actualizar. No incluye Quantity:
// el stock solo se modifica a través del ledger.
type UpdateProductRequest struct {
	Name              *string          `json:"name"`
	Description       *string          `json:"description"`
	Barcode           *string          `json:"barcode"`
	Price             *decimal.Decimal `json:"price"`
	Cost              *decimal.Decimal `json:"cost"`
	CategoryID        *string          `json:"category_id"`
	SupplierID        *string          `json:"supplier_id"`
	ExpirationDate    *time.Time       `json:"expiration_date"`
	LowStockThreshold *int64           `json:"low_stock_threshold"`
}

// ProductFilterRequest filtros de listado (query params).
type ProductFilterRequest struct {
	CategoryID   string `query:"category_id"`
	SupplierID   string `query:"supplier_id"`
	LowStock     bool   `query:"low_stock"`
	ExpiringSoon bool   `query:"expiring_soon"`
}

// ProductResponse representación de un producto en respuestas.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Barcode           string          `json:"barcode"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Quantity          int64           `json:"quantity"`
	CategoryID        string          `json:"category_id"`
	SupplierID        string          `json:"supplier_id"`
	ExpirationDate    *time.Time      `json:"expiration_date,omitempty"`
	LowStockThreshold int64           `json:"low_stock_threshold"`
	LowStock          bool            `json:"low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
