package model

import (
	"time"
)

// Usuario covers administrators, barbers and customers in one table,
// partitioned by RolID. Customers never log in: PasswordHash is only
// meaningful when AccedeAlSistema is true.
// Deletion is always logical — Activo flips to false, the row stays.
type Usuario struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Nombre   string  `gorm:"type:varchar(100);not null" json:"nombre"`
	Email    string  `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	Telefono *string `gorm:"type:varchar(30)" json:"telefono"`
	Avatar   *string `gorm:"type:varchar(255)" json:"avatar"`
	RolID    uint    `gorm:"not null;index" json:"rolId"`

	AccedeAlSistema bool    `gorm:"not null;default:false" json:"accedeAlSistema"`
	Activo          bool    `gorm:"not null;default:true" json:"activo"`
	PasswordHash    *string `gorm:"type:varchar(100)" json:"-"`

	// Audit
	CreadoPor     *uint     `json:"creadoPor,omitempty"`
	ModificadoPor *uint     `json:"modificadoPor,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Rol *Rol `gorm:"foreignKey:RolID" json:"rol,omitempty"`
}

func (Usuario) TableName() string { return "usuarios" }
