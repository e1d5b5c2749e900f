package model

import "time"

// Image type tags. One active image per (tipo, id_relacionado) is expected by
// convention; no uniqueness constraint enforces it.
const (
	ImagenAvatarUsuario    = "AvatarUsuario"
	ImagenProductoServicio = "ProductoServicio"
	ImagenComprobantePago  = "ComprobantePago"
)

// Imagen associates a stored file with its owning entity via (TipoImagen,
// IdRelacionado). Images are hard-deleted together with their files.
type Imagen struct {
	ID            uint      `gorm:"primaryKey" json:"idImagen"`
	Ruta          string    `gorm:"type:varchar(255);not null" json:"ruta"`
	TipoImagen    string    `gorm:"type:varchar(30);not null;index:idx_imagen_owner" json:"tipoImagen"`
	IdRelacionado uint      `gorm:"not null;index:idx_imagen_owner" json:"idRelacionado"`
	Activo        bool      `gorm:"not null;default:true" json:"activo"`
	FechaCreacion time.Time `gorm:"not null" json:"fechaCreacion"`
}

func (Imagen) TableName() string { return "imagenes" }
