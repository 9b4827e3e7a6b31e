package purchasing

import (
	"context"

	"github.com/tu-usuario/supermarket-pos/internal/domain/repository"
)

// PurchaseTxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita el motor de compras. La creación de órdenes y la
// recepción (líneas + incrementos de stock + cambio de estado) son atómicas.
type PurchaseTxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		ledger repository.StockLedger,
	) error) error
}
