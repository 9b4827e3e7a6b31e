package repository

import (
	"context"

	"github.com/tu-usuario/supermarket-pos/internal/domain/entity"
)

// ProductFilter describe los filtros opcionales de listado de productos.
// Reemplaza la concatenación ad hoc de SQL: cada campo se traduce una sola vez
// en la capa de persistencia.
type ProductFilter struct {
	CategoryID   string // vacío = sin filtro
	SupplierID   string // vacío = sin filtro
	LowStock     bool   // quantity <= low_stock_threshold
	ExpiringSoon bool   // expiration_date dentro de los próximos 30 días
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Quantity NO se modifica por Create/Update: solo a través del StockLedger.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}
