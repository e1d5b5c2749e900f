package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Catalog create/update requests arrive as multipart forms because they may
// carry an image file; the file itself is read from the form by the handler.
type CrearProductoRequest struct {
	Nombre        string          `form:"nombre" validate:"required,min=1,max=100"`
	Descripcion   *string         `form:"descripcion"`
	Precio        decimal.Decimal `form:"precio" validate:"min=0,lte=10000"`
	EsAlmacenable bool            `form:"esAlmacenable"`
	Cantidad      int             `form:"cantidad" validate:"min=0"`
}

type ActualizarProductoRequest struct {
	ID            uint            `form:"id" validate:"required"`
	Nombre        string          `form:"nombre" validate:"required,min=1,max=100"`
	Descripcion   *string         `form:"descripcion"`
	Precio        decimal.Decimal `form:"precio" validate:"min=0,lte=10000"`
	EsAlmacenable bool            `form:"esAlmacenable"`
	Cantidad      int             `form:"cantidad" validate:"min=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// ProductoFilter narrows catalog listings. Sort is whitelisted in the
// repository; unknown columns fall back to nombre.
type ProductoFilter struct {
	Nombre      string           `form:"nombre"`
	Descripcion string           `form:"descripcion"`
	Precio      *decimal.Decimal `form:"precio"`
	Cantidad    *int             `form:"cantidad"`
	Sort        string           `form:"sort"`
	Order       string           `form:"order"` // asc | desc
	PageFilter
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProductoResponse carries the catalog row plus the resolved active image
// path, if any.
type ProductoResponse struct {
	ID            uint            `json:"id"`
	Nombre        string          `json:"nombre"`
	Descripcion   *string         `json:"descripcion"`
	Precio        decimal.Decimal `json:"precio"`
	EsAlmacenable bool            `json:"esAlmacenable"`
	Cantidad      int             `json:"cantidad"`
	RutaImagen    *string         `json:"rutaImagen"`
}
