package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CrearPagoRequest struct {
	AtencionID uint            `json:"atencionId" validate:"required"`
	MetodoPago string          `json:"metodoPago" validate:"required"`
	Monto      decimal.Decimal `json:"monto" validate:"required"`
	// Fecha defaults to the current time when zero.
	Fecha time.Time `json:"fecha"`
}

// CrearPagoResponse wraps the created payment. Advertencia is set when the
// accumulated payments now exceed the attendance total — allowed (tips),
// but worth surfacing.
type CrearPagoResponse struct {
	Pago        PagoResponse `json:"pago"`
	Advertencia string       `json:"advertencia,omitempty"`
}
