package sales

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

// ProcessSaleUseCase registra ventas de mostrador de forma transaccional:
// resuelve precios de catálogo, inserta cabecera y líneas y descuenta stock
// vía el ledger, todo con Commit/Rollback en una sola unidad de trabajo.
type ProcessSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
	receipt  ReceiptPDFGenerator
}

// NewProcessSaleUseCase construye el caso de uso.
func NewProcessSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
	receipt ReceiptPDFGenerator,
) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{
		txRunner: txRunner,
		saleRepo: saleRepo,
		userRepo: userRepo,
		receipt:  receipt,
	}
}

// ProcessSale registra una venta. El precio de cada línea se resuelve contra el
// catálogo DENTRO de la transacción (nunca se acepta del caller), el total es
// Σ cantidad × precio, y cada línea descuenta stock con un delta negativo.
// Cualquier fallo revierte todo: no quedan ventas parciales ni stock a medias.
//
// No se verifica stock suficiente antes de descontar: una venta que excede el
// inventario deja la cantidad negativa (comportamiento deliberado de caja,
// cubierto por test de regresión).
func (uc *ProcessSaleUseCase) ProcessSale(ctx context.Context, cashierID string, in dto.ProcessSaleRequest) (*dto.ProcessSaleResponse, error) {
	if cashierID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Descartar líneas sin producto o con cantidad no positiva (el formulario
	// de caja permite filas vacías).
	valid := make([]dto.SaleItemRequest, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID != "" && it.Quantity > 0 {
			valid = append(valid, it)
		}
	}
	if len(valid) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	saleID := uuid.New().String()
	now := time.Now()
	var total decimal.Decimal

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		ledger repository.StockLedger,
	) error {
		// Resolver precios dentro de la tx para que el total y las líneas
		// usen exactamente el mismo precio confirmado.
		products := make(map[string]*entity.Product, len(valid))
		total = decimal.Zero
		for _, it := range valid {
			p, ok := products[it.ProductID]
			if !ok {
				var err error
				p, err = productRepo.GetByID(ctx, it.ProductID)
				if err != nil {
					return err
				}
				if p == nil {
					return domain.ErrProductNotFound
				}
				products[it.ProductID] = p
			}
			total = total.Add(p.Price.Mul(decimal.NewFromInt(it.Quantity)))
		}

		sale := &entity.Sale{
			ID:            saleID,
			UserID:        cashierID,
			Date:          now,
			TotalAmount:   total,
			PaymentMethod: in.PaymentMethod,
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}

		for _, it := range valid {
			p := products[it.ProductID]
			lineTotal := p.Price.Mul(decimal.NewFromInt(it.Quantity))
			item := &entity.SaleItem{
				ID:         uuid.New().String(),
				SaleID:     saleID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				UnitPrice:  p.Price,
				TotalPrice: lineTotal,
			}
			if err := saleRepo.CreateItem(ctx, item); err != nil {
				return err
			}
			if err := ledger.ApplyDelta(ctx, it.ProductID, -it.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, summarize(err)
	}

	return &dto.ProcessSaleResponse{SaleID: saleID, TotalAmount: total}, nil
}

// GetSale devuelve una venta con sus líneas y datos de producto.
func (uc *ProcessSaleUseCase) GetSale(ctx context.Context, saleID string) (*dto.SaleDetailResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaleDetailResponse{
		ID:            sale.ID,
		Date:          sale.Date,
		CashierID:     sale.UserID,
		TotalAmount:   sale.TotalAmount,
		PaymentMethod: sale.PaymentMethod,
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Barcode:     it.Barcode,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return resp, nil
}

// DownloadReceiptPDF genera el recibo PDF de una venta confirmada.
// Retorna (pdfBytes, filename, nil) o domain.ErrNotFound si la venta no existe.
func (uc *ProcessSaleUseCase) DownloadReceiptPDF(ctx context.Context, saleID string) ([]byte, string, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItemsBySaleID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener líneas: %w", err)
	}
	cashier, err := uc.userRepo.GetByID(ctx, sale.UserID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener cajero: %w", err)
	}
	pdfBytes, err := uc.receipt.GenerateReceipt(ctx, sale, cashier, items)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("recibo-%s.pdf", sale.ID), nil
}

// summarize deja pasar los errores de dominio y envuelve cualquier fallo de
// persistencia en un único error resumen tras el rollback.
func summarize(err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidInput):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}
}
