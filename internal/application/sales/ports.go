package sales

import (
	"context"

	"github.com/tu-usuario/supermarket-pos/internal/domain/entity"
	"github.com/tu-usuario/supermarket-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de ventas:
// cabecera, líneas y descuentos de stock se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		ledger repository.StockLedger,
	) error) error
}

// ReceiptPDFGenerator genera el recibo en PDF de una venta ya confirmada.
type ReceiptPDFGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, cashier *entity.User, items []repository.SaleItemDetail) ([]byte, error)
}
