package repository

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AtencionRepository interface {
	// Create persists the atencion together with its detalles inside tx.
	Create(ctx context.Context, tx *gorm.DB, a *model.Atencion) error
	// FindByID loads the full response graph: cliente, barbero, detalles with
	// their catalog items, and pagos.
	FindByID(ctx context.Context, id uint) (*model.Atencion, error)
	Existe(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter dto.PageFilter) ([]model.Atencion, int64, error)
	Update(ctx context.Context, a *model.Atencion) (int64, error)
	Delete(ctx context.Context, id uint) error
	TieneDetalles(ctx context.Context, id uint) (bool, error)
	ExisteConTurno(ctx context.Context, turnoID uint) (bool, error)
	// ResumenBarbero aggregates income and visit count for one barber and month.
	ResumenBarbero(ctx context.Context, barberoID uint, mes, anio int) (int64, decimal.Decimal, error)
	DB() *gorm.DB // exposes the DB for transaction creation in the service layer
}

type atencionRepo struct{ db *gorm.DB }

func NewAtencionRepository(db *gorm.DB) AtencionRepository { return &atencionRepo{db: db} }

func (r *atencionRepo) DB() *gorm.DB { return r.db }

func (r *atencionRepo) Create(ctx context.Context, tx *gorm.DB, a *model.Atencion) error {
	return tx.WithContext(ctx).Create(a).Error
}

func (r *atencionRepo) FindByID(ctx context.Context, id uint) (*model.Atencion, error) {
	var a model.Atencion
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Barbero").
		Preload("Detalles.ProductoServicio").
		Preload("Pagos").
		First(&a, id).Error
	return &a, err
}

func (r *atencionRepo) Existe(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Atencion{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *atencionRepo) List(ctx context.Context, filter dto.PageFilter) ([]model.Atencion, int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(&model.Atencion{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var atenciones []model.Atencion
	err := q.Preload("Detalles").
		Order("fecha ASC").
		Offset(filter.Offset()).Limit(filter.PageSize).
		Find(&atenciones).Error
	return atenciones, total, err
}

// Update replaces the full record. The caller distinguishes a vanished row
// (RowsAffected == 0) from other failures.
func (r *atencionRepo) Update(ctx context.Context, a *model.Atencion) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Atencion{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"cliente_id": a.ClienteID,
			"barbero_id": a.BarberoID,
			"fecha":      a.Fecha,
			"total":      a.Total,
			"turno_id":   a.TurnoID,
		})
	return res.RowsAffected, res.Error
}

func (r *atencionRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Atencion{}, id).Error
}

func (r *atencionRepo) TieneDetalles(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DetalleAtencion{}).
		Where("atencion_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *atencionRepo) ExisteConTurno(ctx context.Context, turnoID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Atencion{}).
		Where("turno_id = ?", turnoID).Count(&n).Error
	return n > 0, err
}

func (r *atencionRepo) ResumenBarbero(ctx context.Context, barberoID uint, mes, anio int) (int64, decimal.Decimal, error) {
	var row struct {
		Cuenta   int64
		Ingresos decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Atencion{}).
		Select("COUNT(*) AS cuenta, COALESCE(SUM(total), 0) AS ingresos").
		Where("barbero_id = ? AND EXTRACT(MONTH FROM fecha) = ? AND EXTRACT(YEAR FROM fecha) = ?",
			barberoID, mes, anio).
		Scan(&row).Error
	return row.Cuenta, row.Ingresos, err
}
