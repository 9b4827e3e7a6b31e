package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/supermarket-pos/internal/domain"
	"github.com/tu-usuario/supermarket-pos/internal/domain/entity"
	"github.com/tu-usuario/supermarket-pos/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación de PurchaseOrderRepository sobre PostgreSQL
// (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de órdenes de compra. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la cabecera de una orden de compra.
func (r *PurchaseOrderRepo) Create(ctx context.Context, order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (id, supplier_id, order_date, expected_delivery_date, total_amount, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.SupplierID, order.OrderDate, order.ExpectedDeliveryDate,
		order.TotalAmount, order.Status, order.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de orden (product_id puede ser NULL).
func (r *PurchaseOrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, product_id, product_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.OrderID, item.ProductID, item.ProductName,
		item.Quantity, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT id, supplier_id, order_date, expected_delivery_date, total_amount, status, notes
		FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.SupplierID, &o.OrderDate, &o.ExpectedDeliveryDate,
		&o.TotalAmount, &o.Status, &o.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// GetItems devuelve las líneas de una orden con el barcode del producto si la
// referencia sigue vigente (LEFT JOIN: las líneas sin producto quedan con
// barcode vacío).
func (r *PurchaseOrderRepo) GetItems(ctx context.Context, orderID string) ([]repository.OrderItemDetail, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.product_name, oi.quantity,
		       oi.unit_price, oi.total_price, COALESCE(p.barcode, '')
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1`
	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()
	var items []repository.OrderItemDetail
	for rows.Next() {
		var it repository.OrderItemDetail
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.TotalPrice, &it.Barcode); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpdateStatus cambia el estado de la orden (pending → received).
func (r *PurchaseOrderRepo) UpdateStatus(ctx context.Context, orderID, status string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE purchase_orders SET status = $2 WHERE id = $1`,
		orderID, status,
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// List lista órdenes con nombre de proveedor, traduciendo el filtro de estado
// con el whereBuilder.
func (r *PurchaseOrderRepo) List(ctx context.Context, status string) ([]repository.OrderSummary, error) {
	var w whereBuilder
	if status != "" {
		w.add("po.status = $%d", status)
	}
	query := `
		SELECT po.id, po.supplier_id, po.order_date, po.expected_delivery_date,
		       po.total_amount, po.status, po.notes, s.name
		FROM purchase_orders po
		JOIN suppliers s ON s.id = po.supplier_id` + w.clause() + `
		ORDER BY po.order_date DESC`
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []repository.OrderSummary
	for rows.Next() {
		var o repository.OrderSummary
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.OrderDate, &o.ExpectedDeliveryDate,
			&o.TotalAmount, &o.Status, &o.Notes, &o.SupplierName); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
