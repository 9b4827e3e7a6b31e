package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados en caja.
const (
	PaymentCash          = "cash"
	PaymentCreditCard    = "credit_card"
	PaymentMobilePayment = "mobile_payment"
)

// Sale representa la cabecera de una venta de mostrador.
// Se crea junto con sus SaleItems en una sola transacción y es inmutable después.
type Sale struct {
	ID            string
	UserID        string // cajero que registró la venta
	Date          time.Time
	TotalAmount   decimal.Decimal // suma de los totales de línea, calculada en el servidor
	PaymentMethod string
}
