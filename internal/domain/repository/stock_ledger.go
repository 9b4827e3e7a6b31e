package repository

import "context"

// StockLedger aplica deltas con signo sobre la cantidad en bodega de un producto.
// Es el ÚNICO camino por el que el stock cambia fuera del mantenimiento de catálogo.
//
// La implementación debe usar un UPDATE relativo (quantity = quantity + delta),
// nunca leer-y-escribir, para que incrementos concurrentes no se pierdan.
// No valida quantity >= 0: una venta que excede el stock deja cantidad negativa.
type StockLedger interface {
	// ApplyDelta suma delta (positivo o negativo) a la cantidad del producto.
	// Retorna domain.ErrProductNotFound si el producto no existe.
	ApplyDelta(ctx context.Context, productID string, delta int64) error
}
