package model

import "time"

// EstadoTurno is static reference data for appointment states.
type EstadoTurno struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nombre string `gorm:"type:varchar(50);not null" json:"nombre"`
}

func (EstadoTurno) TableName() string { return "estado_turnos" }

// Turno is a scheduled future visit, optionally fulfilled later by an
// Atencion (which then points back via atenciones.turno_id). Deletion is
// blocked while any atencion references the slot.
type Turno struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FechaHora     time.Time `gorm:"not null;index" json:"fechaHora"`
	EstadoTurnoID *uint     `json:"estadoTurnoId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	EstadoTurno *EstadoTurno `gorm:"foreignKey:EstadoTurnoID" json:"estadoTurno,omitempty"`
}

func (Turno) TableName() string { return "turnos" }
