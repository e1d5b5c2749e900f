package repository

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"

	"gorm.io/gorm"
)

type DetalleRepository interface {
	Create(ctx context.Context, d *model.DetalleAtencion) error
	FindByID(ctx context.Context, id uint) (*model.DetalleAtencion, error)
	List(ctx context.Context, filter dto.PageFilter) ([]model.DetalleAtencion, int64, error)
	Update(ctx context.Context, d *model.DetalleAtencion) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type detalleRepo struct{ db *gorm.DB }

func NewDetalleRepository(db *gorm.DB) DetalleRepository { return &detalleRepo{db: db} }

func (r *detalleRepo) Create(ctx context.Context, d *model.DetalleAtencion) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *detalleRepo) FindByID(ctx context.Context, id uint) (*model.DetalleAtencion, error) {
	var d model.DetalleAtencion
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *detalleRepo) List(ctx context.Context, filter dto.PageFilter) ([]model.DetalleAtencion, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&model.DetalleAtencion{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var detalles []model.DetalleAtencion
	err := q.Order("atencion_id ASC").
		Offset(filter.Offset()).Limit(filter.PageSize).
		Find(&detalles).Error
	return detalles, total, err
}

func (r *detalleRepo) Update(ctx context.Context, d *model.DetalleAtencion) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.DetalleAtencion{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"atencion_id":          d.AtencionID,
			"producto_servicio_id": d.ProductoServicioID,
			"cantidad":             d.Cantidad,
			"precio_unitario":      d.PrecioUnitario,
		})
	return res.RowsAffected, res.Error
}

func (r *detalleRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.DetalleAtencion{}, id).Error
}
