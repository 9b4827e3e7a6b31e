package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/supermarket-pos/internal/domain/entity"
)

// SaleItemDetail es una línea de venta enriquecida con datos del producto,
// para el detalle de venta y el recibo.
type SaleItemDetail struct {
	ID          string
	ProductID   string
	ProductName string
	Barcode     string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Sale y SaleItems se crean juntos dentro de una transacción y nunca se
// actualizan ni eliminan.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetItemsBySaleID(ctx context.Context, saleID string) ([]SaleItemDetail, error)
}
