package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoServicio is a single catalog table for both stock-tracked products
// and services. Invariant: Cantidad > 0 only when EsAlmacenable is true.
// Rows are physically deleted, guarded by detalle_atenciones references.
type ProductoServicio struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Nombre      string          `gorm:"type:varchar(100);index;not null" json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"precio"`
	// EsAlmacenable distinguishes stock-tracked products from services.
	EsAlmacenable bool      `gorm:"not null;default:false" json:"esAlmacenable"`
	Cantidad      int       `gorm:"not null;default:0" json:"cantidad"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (ProductoServicio) TableName() string { return "productos_servicios" }
