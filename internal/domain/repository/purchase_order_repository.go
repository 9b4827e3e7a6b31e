package repository

import (
	"context"

	"github.com/tu-usuario/supermarket-pos/internal/domain/entity"
)

// OrderItemDetail es una línea de orden enriquecida con el barcode del
// producto (si la referencia sigue siendo válida).
type OrderItemDetail struct {
	entity.OrderItem
	Barcode string
}

// OrderSummary es una orden con el nombre del proveedor, para listados.
type OrderSummary struct {
	entity.PurchaseOrder
	SupplierName string
}

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder
// y sus líneas. Las líneas son inmutables; la cabecera solo muta una vez
// (pending → received).
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	CreateItem(ctx context.Context, item *entity.OrderItem) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	GetItems(ctx context.Context, orderID string) ([]OrderItemDetail, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	List(ctx context.Context, status string) ([]OrderSummary, error)
}
