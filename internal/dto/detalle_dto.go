package dto

import "github.com/shopspring/decimal"

// Standalone detalle endpoints (outside the aggregate creation path).

type CrearDetalleRequest struct {
	AtencionID         uint            `json:"atencionId" validate:"required"`
	ProductoServicioID uint            `json:"productoServicioId" validate:"required"`
	Cantidad           int             `json:"cantidad" validate:"required,min=1"`
	PrecioUnitario     decimal.Decimal `json:"precioUnitario" validate:"min=0,lte=10000"`
}

type ActualizarDetalleRequest struct {
	ID                 uint            `json:"id" validate:"required"`
	AtencionID         uint            `json:"atencionId" validate:"required"`
	ProductoServicioID uint            `json:"productoServicioId" validate:"required"`
	Cantidad           int             `json:"cantidad" validate:"required,min=1"`
	PrecioUnitario     decimal.Decimal `json:"precioUnitario" validate:"min=0,lte=10000"`
}
