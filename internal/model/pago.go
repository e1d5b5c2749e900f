package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods. MetodoPago values are stored as text, never as magic ints.
const (
	MetodoEfectivo       = "Efectivo"
	MetodoTarjetaDebito  = "TarjetaDebito"
	MetodoTarjetaCredito = "TarjetaCredito"
	MetodoTransferencia  = "Transferencia"
	MetodoMercadoPago    = "MercadoPago"
	MetodoNaranjaX       = "NaranjaX"
	MetodoQR             = "QR"
	MetodoOtro           = "Otro"
)

// MetodosPago lists every accepted payment method, checked at the boundary.
var MetodosPago = []string{
	MetodoEfectivo, MetodoTarjetaDebito, MetodoTarjetaCredito,
	MetodoTransferencia, MetodoMercadoPago, MetodoNaranjaX,
	MetodoQR, MetodoOtro,
}

// MetodoPagoValido reports whether m belongs to the closed method set.
func MetodoPagoValido(m string) bool {
	for _, v := range MetodosPago {
		if v == m {
			return true
		}
	}
	return false
}

// Pago records one payment against an Atencion. An attendance may accumulate
// several partial payments; nothing caps their sum at the attendance total.
type Pago struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	AtencionID uint            `gorm:"not null;index" json:"atencionId"`
	MetodoPago string          `gorm:"type:varchar(20);not null" json:"metodoPago"`
	Monto      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monto"`
	Fecha      time.Time       `gorm:"not null" json:"fecha"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func (Pago) TableName() string { return "pagos" }
