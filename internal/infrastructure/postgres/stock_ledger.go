package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/supermarket-pos/internal/domain"
	"github.com/tu-usuario/supermarket-pos/internal/domain/repository"
)

var _ repository.StockLedger = (*StockLedgerRepo)(nil)

// StockLedgerRepo implementación del ledger de stock sobre PostgreSQL
// (usable con pool o tx).
type StockLedgerRepo struct {
	q Querier
}

// NewStockLedger construye el ledger. Pasar pool o tx (Querier).
func NewStockLedger(q Querier) *StockLedgerRepo {
	return &StockLedgerRepo{q: q}
}

// ApplyDelta suma delta a la cantidad del producto con un UPDATE relativo.
// La atomicidad del UPDATE evita updates perdidos entre callers concurrentes;
// no se valida quantity >= 0 (el stock puede quedar negativo).
func (r *StockLedgerRepo) ApplyDelta(ctx context.Context, productID string, delta int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = quantity + $2, updated_at = now() WHERE id = $1`,
		productID, delta,
	)
	if err != nil {
		return fmt.Errorf("apply stock delta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
