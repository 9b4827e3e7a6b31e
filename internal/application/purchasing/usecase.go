package purchasing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/supermarket-pos/internal/application/dto"
	"github.com/tu-usuario/supermarket-pos/internal/domain"
	"github.com/tu-usuario/supermarket-pos/internal/domain/entity"
	"github.com/tu-usuario/supermarket-pos/internal/domain/repository"
)

// PurchaseOrderUseCase maneja el ciclo de vida de órdenes de compra en dos
// fases: crear (pending, sin tocar stock) y recibir (incrementos de stock +
// estado received), cada una como su propia unidad de trabajo transaccional.
type PurchaseOrderUseCase struct {
	txRunner  PurchaseTxRunner
	orderRepo repository.PurchaseOrderRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(txRunner PurchaseTxRunner, orderRepo repository.PurchaseOrderRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{txRunner: txRunner, orderRepo: orderRepo}
}

// CreateOrder crea una orden en estado pending. El total es Σ cantidad ×
// precio cotizado del proveedor (aquí sí viene del caller: son cotizaciones,
// no precios de catálogo). No toca stock.
func (uc *PurchaseOrderUseCase) CreateOrder(ctx context.Context, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if it.ProductID == "" && it.ProductName == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	total := decimal.Zero
	for _, it := range in.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}

	orderID := uuid.New().String()
	now := time.Now()

	err := uc.txRunner.RunPurchase(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		_ repository.StockLedger,
	) error {
		order := &entity.PurchaseOrder{
			ID:                   orderID,
			SupplierID:           in.SupplierID,
			OrderDate:            now,
			ExpectedDeliveryDate: in.ExpectedDelivery,
			TotalAmount:          total,
			Status:               entity.OrderStatusPending,
			Notes:                in.Notes,
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		for _, it := range in.Items {
			var productID *string
			if it.ProductID != "" {
				pid := it.ProductID
				productID = &pid
			}
			item := &entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     orderID,
				ProductID:   productID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				TotalPrice:  it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
			}
			if err := orderRepo.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, summarize(err)
	}

	return &dto.CreateOrderResponse{
		OrderID:     orderID,
		TotalAmount: total,
		Status:      entity.OrderStatusPending,
	}, nil
}

// ReceiveOrder aplica al stock las cantidades de la orden (delta positivo por
// cada línea cuya referencia de producto siga siendo válida; las líneas sin
// referencia se omiten) y marca la orden como received, todo en una
// transacción. Si algo falla, el estado y el stock quedan intactos.
//
// NO es idempotente: recibir dos veces la misma orden vuelve a aplicar los
// incrementos (comportamiento heredado, cubierto por test de regresión).
func (uc *PurchaseOrderUseCase) ReceiveOrder(ctx context.Context, orderID string) error {
	if orderID == "" {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.RunPurchase(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		ledger repository.StockLedger,
	) error {
		order, err := orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrOrderNotFound
		}
		items, err := orderRepo.GetItems(ctx, orderID)
		if err != nil {
			return err
		}
		for _, it := range items {
			if it.ProductID == nil {
				continue // producto descontinuado o entrada ad-hoc
			}
			if err := ledger.ApplyDelta(ctx, *it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusReceived)
	})
	if err != nil {
		return summarize(err)
	}
	return nil
}

// ListOrders lista órdenes con nombre de proveedor; status vacío = todas.
func (uc *PurchaseOrderUseCase) ListOrders(ctx context.Context, status string) ([]dto.OrderResponse, error) {
	if status != "" && status != entity.OrderStatusPending && status != entity.OrderStatusReceived {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.OrderResponse{
			ID:                   o.ID,
			SupplierID:           o.SupplierID,
			SupplierName:         o.SupplierName,
			OrderDate:            o.OrderDate,
			ExpectedDeliveryDate: o.ExpectedDeliveryDate,
			TotalAmount:          o.TotalAmount,
			Status:               o.Status,
			Notes:                o.Notes,
		})
	}
	return out, nil
}

// GetOrderItems devuelve las líneas de una orden.
func (uc *PurchaseOrderUseCase) GetOrderItems(ctx context.Context, orderID string) ([]dto.OrderItemResponse, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	items, err := uc.orderRepo.GetItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Barcode:     it.Barcode,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return out, nil
}

// summarize deja pasar los errores de dominio y envuelve cualquier fallo de
// persistencia en un único error resumen tras el rollback.
func summarize(err error) error {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidInput):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}
}
