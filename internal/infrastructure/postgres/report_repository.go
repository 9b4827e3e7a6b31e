package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/supermarket-pos/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de reportería sobre PostgreSQL. Solo lectura, siempre
// sobre el pool (nunca dentro de una transacción de escritura).
type ReportRepo struct {
	q Querier
}

func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// dateFilter traduce el rango de fechas a condiciones sobre la columna dada.
func dateFilter(w *whereBuilder, column string, dates repository.DateRange) {
	if dates.Start != nil {
		w.add(column+" >= $%d", *dates.Start)
	}
	if dates.End != nil {
		w.add(column+" <= $%d", *dates.End)
	}
}

// ListSales lista las ventas del rango con nombre del cajero y número de
// líneas de la venta (no unidades).
func (r *ReportRepo) ListSales(ctx context.Context, dates repository.DateRange) ([]repository.SaleSummary, error) {
	var w whereBuilder
	dateFilter(&w, "s.date", dates)
	query := `
		SELECT s.id, s.date, u.full_name, s.total_amount, s.payment_method,
		       COUNT(si.id)
		FROM sales s
		JOIN users u ON u.id = s.cashier_id
		LEFT JOIN sale_items si ON si.sale_id = s.id` + w.clause() + `
		GROUP BY s.id, s.date, u.full_name, s.total_amount, s.payment_method
		ORDER BY s.date DESC`
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var sales []repository.SaleSummary
	for rows.Next() {
		var s repository.SaleSummary
		if err := rows.Scan(&s.ID, &s.Date, &s.CashierName, &s.TotalAmount,
			&s.PaymentMethod, &s.ItemCount); err != nil {
			return nil, fmt.Errorf("scan sale summary: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// GetSaleProfit calcula la utilidad de una venta contra el costo actual del
// producto. Una línea cuyo producto fue eliminado no aporta utilidad.
func (r *ReportRepo) GetSaleProfit(ctx context.Context, saleID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM((si.unit_price - p.cost) * si.quantity), 0)
		FROM sale_items si
		JOIN products p ON p.id = si.product_id
		WHERE si.sale_id = $1`
	var profit decimal.Decimal
	if err := r.q.QueryRow(ctx, query, saleID).Scan(&profit); err != nil {
		return decimal.Zero, fmt.Errorf("get sale profit: %w", err)
	}
	return profit, nil
}

// GetBestSellers agrupa las líneas del rango por producto, ordenado por
// cantidad vendida descendente.
func (r *ReportRepo) GetBestSellers(ctx context.Context, dates repository.DateRange, limit int) ([]repository.BestSellerResult, error) {
	var w whereBuilder
	dateFilter(&w, "s.date", dates)
	query := fmt.Sprintf(`
		SELECT p.id, p.name, SUM(si.quantity), SUM(si.total_price),
		       SUM((si.unit_price - p.cost) * si.quantity)
		FROM sale_items si
		JOIN sales s ON s.id = si.sale_id
		JOIN products p ON p.id = si.product_id`+w.clause()+`
		GROUP BY p.id, p.name
		ORDER BY SUM(si.quantity) DESC
		LIMIT %d`, limit)
	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("get best sellers: %w", err)
	}
	defer rows.Close()
	var results []repository.BestSellerResult
	for rows.Next() {
		var b repository.BestSellerResult
		if err := rows.Scan(&b.ProductID, &b.Name, &b.TotalQuantity,
			&b.TotalRevenue, &b.TotalProfit); err != nil {
			return nil, fmt.Errorf("scan best seller: %w", err)
		}
		results = append(results, b)
	}
	return results, rows.Err()
}

func (r *ReportRepo) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *ReportRepo) CountLowStock(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM products WHERE quantity <= low_stock_threshold`)
}

func (r *ReportRepo) CountExpiringSoon(ctx context.Context) (int64, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM products
		WHERE expiration_date IS NOT NULL
		  AND expiration_date BETWEEN now() AND now() + interval '30 days'`)
}

func (r *ReportRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// RecentSales últimas ventas para el dashboard.
func (r *ReportRepo) RecentSales(ctx context.Context, limit int) ([]repository.RecentSale, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.date, s.total_amount, u.full_name
		FROM sales s
		JOIN users u ON u.id = s.cashier_id
		ORDER BY s.date DESC
		LIMIT %d`, limit)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()
	var sales []repository.RecentSale
	for rows.Next() {
		var s repository.RecentSale
		if err := rows.Scan(&s.ID, &s.Date, &s.TotalAmount, &s.CashierName); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// LowStockItems productos en o bajo su umbral de reorden, los más críticos primero.
func (r *ReportRepo) LowStockItems(ctx context.Context, limit int) ([]repository.LowStockItem, error) {
	query := fmt.Sprintf(`
		SELECT id, name, quantity, low_stock_threshold
		FROM products
		WHERE quantity <= low_stock_threshold
		ORDER BY quantity ASC
		LIMIT %d`, limit)
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("low stock items: %w", err)
	}
	defer rows.Close()
	var items []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.Threshold); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
