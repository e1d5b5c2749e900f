package repository

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"

	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM implementation.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.ProductoServicio) error
	FindByID(ctx context.Context, id uint) (*model.ProductoServicio, error)
	Existe(ctx context.Context, id uint) (bool, error)
	// List partitions the catalog by es_almacenable and applies the filter's
	// substring/exact matches, sort whitelist and pagination.
	List(ctx context.Context, almacenable bool, filter dto.ProductoFilter) ([]model.ProductoServicio, int64, error)
	Update(ctx context.Context, p *model.ProductoServicio) error
	Delete(ctx context.Context, id uint) error
	// TieneDetalles reports whether any line item references the catalog item;
	// deletion is blocked while true.
	TieneDetalles(ctx context.Context, id uint) (bool, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.ProductoServicio) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.ProductoServicio, error) {
	var p model.ProductoServicio
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProductoServicio{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// sortColumns is the whitelist for ORDER BY; anything else falls back to nombre.
var sortColumns = map[string]string{
	"nombre":      "nombre",
	"precio":      "precio",
	"cantidad":    "cantidad",
	"descripcion": "descripcion",
}

func (r *productoRepo) List(ctx context.Context, almacenable bool, filter dto.ProductoFilter) ([]model.ProductoServicio, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.ProductoServicio{}).
		Where("es_almacenable = ?", almacenable)

	if filter.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Descripcion != "" {
		q = q.Where("descripcion ILIKE ?", "%"+filter.Descripcion+"%")
	}
	if filter.Precio != nil {
		q = q.Where("precio = ?", filter.Precio)
	}
	if filter.Cantidad != nil {
		q = q.Where("cantidad = ?", *filter.Cantidad)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := sortColumns[filter.Sort]
	if !ok {
		col = "nombre"
	}
	dir := "ASC"
	if filter.Order == "desc" {
		dir = "DESC"
	}

	var productos []model.ProductoServicio
	err := q.Order(col + " " + dir).
		Offset(filter.Offset()).Limit(filter.PageSize).
		Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.ProductoServicio) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ProductoServicio{}, id).Error
}

func (r *productoRepo) TieneDetalles(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DetalleAtencion{}).
		Where("producto_servicio_id = ?", id).Count(&n).Error
	return n > 0, err
}
