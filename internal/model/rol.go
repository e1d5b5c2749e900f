package model

import "fmt"

// Rol is static reference data: one row per role.
type Rol struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	NombreRol string `gorm:"type:varchar(50);not null" json:"nombreRol"`
}

func (Rol) TableName() string { return "roles" }

// NombreRol is the closed set of roles the system knows. Every role check at
// the API boundary goes through this type instead of comparing raw ids.
type NombreRol string

const (
	RolAdministrador NombreRol = "Administrador"
	RolBarbero       NombreRol = "Barbero"
	RolCliente       NombreRol = "Cliente"
)

const (
	RolAdministradorID uint = 1
	RolBarberoID       uint = 2
	RolClienteID       uint = 3
)

// RolDesdeID maps a stored rol_id to its closed enum value. Unknown ids are
// an error, never a silent default.
func RolDesdeID(id uint) (NombreRol, error) {
	switch id {
	case RolAdministradorID:
		return RolAdministrador, nil
	case RolBarberoID:
		return RolBarbero, nil
	case RolClienteID:
		return RolCliente, nil
	default:
		return "", fmt.Errorf("rol_id desconocido: %d", id)
	}
}

// ID returns the rol_id a role name persists as.
func (r NombreRol) ID() uint {
	switch r {
	case RolAdministrador:
		return RolAdministradorID
	case RolBarbero:
		return RolBarberoID
	default:
		return RolClienteID
	}
}

// EsPersonal reports whether the role belongs to shop staff.
func (r NombreRol) EsPersonal() bool {
	return r == RolAdministrador || r == RolBarbero
}
