package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleRequest struct {
	ProductoServicioID uint            `json:"productoServicioId" validate:"required"`
	Cantidad           int             `json:"cantidad" validate:"required,min=1"`
	PrecioUnitario     decimal.Decimal `json:"precioUnitario" validate:"min=0,lte=10000"`
}

type CrearAtencionRequest struct {
	ClienteID uint `json:"clienteId" validate:"required"`
	// Fecha defaults to the current time when zero.
	Fecha    time.Time        `json:"fecha"`
	Total    decimal.Decimal  `json:"total"`
	TurnoID  *uint            `json:"turnoId"`
	Detalles []DetalleRequest `json:"detalles" validate:"required,min=1,dive"`
}

type ActualizarAtencionRequest struct {
	ID        uint            `json:"id" validate:"required"`
	ClienteID uint            `json:"clienteId" validate:"required"`
	BarberoID uint            `json:"barberoId" validate:"required"`
	Fecha     time.Time       `json:"fecha"`
	Total     decimal.Decimal `json:"total" validate:"min=0,lte=10000"`
	TurnoID   *uint           `json:"turnoId"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleResponse struct {
	ID                 uint            `json:"id"`
	AtencionID         uint            `json:"atencionId"`
	ProductoServicioID uint            `json:"productoServicioId"`
	Producto           string          `json:"producto,omitempty"`
	Cantidad           int             `json:"cantidad"`
	PrecioUnitario     decimal.Decimal `json:"precioUnitario"`
	Subtotal           decimal.Decimal `json:"subtotal"`
}

type PagoResponse struct {
	ID         uint            `json:"id"`
	AtencionID uint            `json:"atencionId"`
	MetodoPago string          `json:"metodoPago"`
	Monto      decimal.Decimal `json:"monto"`
	Fecha      time.Time       `json:"fecha"`
}

type AtencionResponse struct {
	ID        uint              `json:"id"`
	ClienteID uint              `json:"clienteId"`
	Cliente   string            `json:"cliente,omitempty"`
	BarberoID uint              `json:"barberoId"`
	Barbero   string            `json:"barbero,omitempty"`
	Fecha     time.Time         `json:"fecha"`
	Total     decimal.Decimal   `json:"total"`
	TurnoID   *uint             `json:"turnoId"`
	Detalles  []DetalleResponse `json:"detalles"`
	Pagos     []PagoResponse    `json:"pagos,omitempty"`
}

// ResumenBarberoResponse aggregates a barber's month: number of attendances
// and income (sum of attendance totals).
type ResumenBarberoResponse struct {
	BarberoID       uint            `json:"barberoId"`
	Mes             int             `json:"mes"`
	Anio            int             `json:"anio"`
	TotalAtenciones int64           `json:"totalAtenciones"`
	Ingresos        decimal.Decimal `json:"ingresos"`
}
