package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Atencion is a completed service visit: the aggregate root owning its line
// items. Total must equal the sum of line-item subtotals — enforced by the
// creation workflow, not re-validated on update.
type Atencion struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ClienteID uint            `gorm:"not null;index" json:"clienteId"`
	BarberoID uint            `gorm:"not null;index" json:"barberoId"`
	Fecha     time.Time       `gorm:"not null;index" json:"fecha"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	// TurnoID links back to the appointment slot this visit fulfilled, if any.
	TurnoID   *uint     `gorm:"index" json:"turnoId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Cliente  *Usuario          `gorm:"foreignKey:ClienteID" json:"cliente,omitempty"`
	Barbero  *Usuario          `gorm:"foreignKey:BarberoID" json:"barbero,omitempty"`
	Detalles []DetalleAtencion `gorm:"foreignKey:AtencionID" json:"detalles,omitempty"`
	Pagos    []Pago            `gorm:"foreignKey:AtencionID" json:"pagos,omitempty"`
}

func (Atencion) TableName() string { return "atenciones" }

// DetalleAtencion is one priced unit of product/service sold within an
// Atencion. PrecioUnitario is captured at sale time and never re-read from
// the catalog.
type DetalleAtencion struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	AtencionID         uint            `gorm:"not null;index" json:"atencionId"`
	ProductoServicioID uint            `gorm:"not null;index" json:"productoServicioId"`
	Cantidad           int             `gorm:"not null;default:1" json:"cantidad"`
	PrecioUnitario     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precioUnitario"`

	ProductoServicio *ProductoServicio `gorm:"foreignKey:ProductoServicioID" json:"productoServicio,omitempty"`
}

func (DetalleAtencion) TableName() string { return "detalle_atenciones" }

// Subtotal is the denormalized line amount: Cantidad × PrecioUnitario.
func (d DetalleAtencion) Subtotal() decimal.Decimal {
	return d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}
