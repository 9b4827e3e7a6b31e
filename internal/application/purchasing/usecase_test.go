package purchasing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/supermarket-pos/internal/application/dto"
	"github.com/tu-usuario/supermarket-pos/internal/application/purchasing"
	"github.com/tu-usuario/supermarket-pos/internal/domain"
	"github.com/tu-usuario/supermarket-pos/internal/domain/entity"
	"github.com/tu-usuario/supermarket-pos/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica de transacción (snapshot + rollback)
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	stock  map[string]int64 // productID → cantidad
	orders map[string]*entity.PurchaseOrder
	items  map[string][]*entity.OrderItem // orderID → líneas
}

func newMemStore() *memStore {
	return &memStore{
		stock:  make(map[string]int64),
		orders: make(map[string]*entity.PurchaseOrder),
		items:  make(map[string][]*entity.OrderItem),
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	for id, q := range s.stock {
		cp.stock[id] = q
	}
	for id, o := range s.orders {
		c := *o
		cp.orders[id] = &c
	}
	for id, its := range s.items {
		cp.items[id] = append(cp.items[id], its...)
	}
	return cp
}

func (s *memStore) restore(from *memStore) {
	s.stock = from.stock
	s.orders = from.orders
	s.items = from.items
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(_ context.Context, order *entity.PurchaseOrder) error {
	c := *order
	r.s.orders[order.ID] = &c
	return nil
}

func (r *memOrderRepo) CreateItem(_ context.Context, item *entity.OrderItem) error {
	c := *item
	r.s.items[item.OrderID] = append(r.s.items[item.OrderID], &c)
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	c := *o
	return &c, nil
}

func (r *memOrderRepo) GetItems(_ context.Context, orderID string) ([]repository.OrderItemDetail, error) {
	var out []repository.OrderItemDetail
	for _, it := range r.s.items[orderID] {
		out = append(out, repository.OrderItemDetail{OrderItem: *it})
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, orderID, status string) error {
	o, ok := r.s.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *memOrderRepo) List(_ context.Context, status string) ([]repository.OrderSummary, error) {
	var out []repository.OrderSummary
	for _, o := range r.s.orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, repository.OrderSummary{PurchaseOrder: *o, SupplierName: "Proveedor"})
	}
	return out, nil
}

type memLedger struct{ s *memStore }

func (l *memLedger) ApplyDelta(_ context.Context, productID string, delta int64) error {
	if _, ok := l.s.stock[productID]; !ok {
		return domain.ErrProductNotFound
	}
	l.s.stock[productID] += delta
	return nil
}

type memTxRunner struct{ s *memStore }

func (tr *memTxRunner) RunPurchase(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	ledger repository.StockLedger,
) error) error {
	backup := tr.s.snapshot()
	err := fn(&memOrderRepo{s: tr.s}, &memLedger{s: tr.s})
	if err != nil {
		tr.s.restore(backup)
		return err
	}
	return nil
}

func newFixture() (*memStore, *purchasing.PurchaseOrderUseCase) {
	store := newMemStore()
	uc := purchasing.NewPurchaseOrderUseCase(&memTxRunner{s: store}, &memOrderRepo{s: store})
	return store, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Crear una orden deja estado pending, total Σ cotizaciones y stock intacto.
func TestCreateOrder_PendingSinTocarStock(t *testing.T) {
	store, uc := newFixture()
	store.stock["P101"] = 95

	out, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		SupplierID: "S3",
		Items: []dto.OrderItemRequest{
			{ProductID: "P101", ProductName: "Widget", Quantity: 20, UnitPrice: decimal.RequireFromString("5.00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("100.00")),
		"total debe ser 20 × 5.00 = 100.00, fue %s", out.TotalAmount)
	assert.Equal(t, int64(95), store.stock["P101"],
		"crear la orden no debe mover stock")

	order := store.orders[out.OrderID]
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, store.items[out.OrderID], 1)
}

// El total usa los precios cotizados del caller, no el catálogo.
func TestCreateOrder_TotalDeCotizaciones(t *testing.T) {
	_, uc := newFixture()

	out, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		SupplierID: "S1",
		Items: []dto.OrderItemRequest{
			{ProductID: "A", ProductName: "Café", Quantity: 10, UnitPrice: decimal.RequireFromString("3.25")},
			{ProductName: "Bolsas logo tienda", Quantity: 500, UnitPrice: decimal.RequireFromString("0.10")},
		},
	})
	require.NoError(t, err)
	// 10×3.25 + 500×0.10 = 32.50 + 50.00 = 82.50
	assert.True(t, out.TotalAmount.Equal(decimal.RequireFromString("82.50")))
}

func TestCreateOrder_Validaciones(t *testing.T) {
	_, uc := newFixture()
	ctx := context.Background()
	price := decimal.RequireFromString("1.00")

	cases := []struct {
		name string
		in   dto.CreateOrderRequest
	}{
		{"sin proveedor", dto.CreateOrderRequest{Items: []dto.OrderItemRequest{{ProductID: "A", Quantity: 1, UnitPrice: price}}}},
		{"sin líneas", dto.CreateOrderRequest{SupplierID: "S1"}},
		{"cantidad cero", dto.CreateOrderRequest{SupplierID: "S1", Items: []dto.OrderItemRequest{{ProductID: "A", Quantity: 0, UnitPrice: price}}}},
		{"precio negativo", dto.CreateOrderRequest{SupplierID: "S1", Items: []dto.OrderItemRequest{{ProductID: "A", Quantity: 1, UnitPrice: decimal.RequireFromString("-1")}}}},
		{"línea sin producto ni nombre", dto.CreateOrderRequest{SupplierID: "S1", Items: []dto.OrderItemRequest{{Quantity: 1, UnitPrice: price}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateOrder(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// Recibir una orden suma las cantidades al stock y marca received.
func TestReceiveOrder_SumaStockYMarcaRecibida(t *testing.T) {
	store, uc := newFixture()
	store.stock["P101"] = 95

	out, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		SupplierID: "S3",
		Items: []dto.OrderItemRequest{
			{ProductID: "P101", ProductName: "Widget", Quantity: 20, UnitPrice: decimal.RequireFromString("5.00")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.ReceiveOrder(context.Background(), out.OrderID))

	assert.Equal(t, int64(115), store.stock["P101"], "95 + 20 = 115")
	assert.Equal(t, entity.OrderStatusReceived, store.orders[out.OrderID].Status)
}

// Las líneas sin referencia de producto se omiten del ajuste de stock pero la
// orden igual queda recibida.
func TestReceiveOrder_OmiteLineasSinProducto(t *testing.T) {
	store, uc := newFixture()
	store.stock["A"] = 10

	out, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		SupplierID: "S1",
		Items: []dto.OrderItemRequest{
			{ProductID: "A", ProductName: "Café", Quantity: 5, UnitPrice: decimal.RequireFromString("3.00")},
			{ProductName: "Producto descontinuado", Quantity: 99, UnitPrice: decimal.RequireFromString("1.00")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.ReceiveOrder(context.Background(), out.OrderID))

	assert.Equal(t, int64(15), store.stock["A"])
	assert.Len(t, store.stock, 1, "la línea sin referencia no debe crear stock nuevo")
	assert.Equal(t, entity.OrderStatusReceived, store.orders[out.OrderID].Status)
}

// Regresión: recibir dos veces la misma orden duplica los incrementos — no
// hay guarda de idempotencia sobre el estado.
func TestReceiveOrder_DobleRecepcionDuplicaStock(t *testing.T) {
	store, uc := newFixture()
	store.stock["P101"] = 95

	out, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		SupplierID: "S3",
		Items: []dto.OrderItemRequest{
			{ProductID: "P101", ProductName: "Widget", Quantity: 20, UnitPrice: decimal.RequireFromString("5.00")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.ReceiveOrder(context.Background(), out.OrderID))
	require.NoError(t, uc.ReceiveOrder(context.Background(), out.OrderID))

	assert.Equal(t, int64(135), store.stock["P101"],
		"95 + 20 + 20 = 135: la segunda recepción vuelve a sumar")
}

// Si una línea referencia un producto eliminado DESPUÉS de crear la orden, la
// recepción falla y revierte: ni stock parcial ni cambio de estado.
func TestReceiveOrder_ProductoEliminadoRevierte(t *testing.T) {
	store, uc := newFixture()
	store.stock["A"] = 10
	store.stock["B"] = 5

	out, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		SupplierID: "S1",
		Items: []dto.OrderItemRequest{
			{ProductID: "A", ProductName: "Café", Quantity: 5, UnitPrice: decimal.RequireFromString("3.00")},
			{ProductID: "B", ProductName: "Té", Quantity: 5, UnitPrice: decimal.RequireFromString("2.00")},
		},
	})
	require.NoError(t, err)

	// El producto B desaparece del catálogo con la referencia aún viva.
	delete(store.stock, "B")

	err = uc.ReceiveOrder(context.Background(), out.OrderID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, int64(10), store.stock["A"], "rollback: el incremento de A se revierte")
	assert.Equal(t, entity.OrderStatusPending, store.orders[out.OrderID].Status)
}

func TestReceiveOrder_OrdenInexistente(t *testing.T) {
	_, uc := newFixture()
	err := uc.ReceiveOrder(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestListOrders_FiltraPorEstado(t *testing.T) {
	store, uc := newFixture()
	store.stock["A"] = 0

	first, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		SupplierID: "S1",
		Items:      []dto.OrderItemRequest{{ProductID: "A", ProductName: "Café", Quantity: 1, UnitPrice: decimal.RequireFromString("1.00")}},
	})
	require.NoError(t, err)
	_, err = uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		SupplierID: "S1",
		Items:      []dto.OrderItemRequest{{ProductID: "A", ProductName: "Café", Quantity: 2, UnitPrice: decimal.RequireFromString("1.00")}},
	})
	require.NoError(t, err)
	require.NoError(t, uc.ReceiveOrder(context.Background(), first.OrderID))

	pending, err := uc.ListOrders(context.Background(), entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	received, err := uc.ListOrders(context.Background(), entity.OrderStatusReceived)
	require.NoError(t, err)
	assert.Len(t, received, 1)

	all, err := uc.ListOrders(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.ListOrders(context.Background(), "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetOrderItems(t *testing.T) {
	_, uc := newFixture()

	out, err := uc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		SupplierID: "S1",
		Items: []dto.OrderItemRequest{
			{ProductID: "A", ProductName: "Café", Quantity: 5, UnitPrice: decimal.RequireFromString("3.00")},
		},
	})
	require.NoError(t, err)

	items, err := uc.GetOrderItems(context.Background(), out.OrderID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Café", items[0].ProductName)
	assert.True(t, items[0].TotalPrice.Equal(decimal.RequireFromString("15.00")))

	_, err = uc.GetOrderItems(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
