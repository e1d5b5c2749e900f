package repository

import (
	"context"

	"github.com/edulopezdev/barberiaLopez/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PagoRepository interface {
	Create(ctx context.Context, p *model.Pago) error
	FindByID(ctx context.Context, id uint) (*model.Pago, error)
	ListByAtencion(ctx context.Context, atencionID uint) ([]model.Pago, error)
	SumByAtencion(ctx context.Context, atencionID uint) (decimal.Decimal, error)
	Delete(ctx context.Context, id uint) error
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoRepository(db *gorm.DB) PagoRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) Create(ctx context.Context, p *model.Pago) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pagoRepo) FindByID(ctx context.Context, id uint) (*model.Pago, error) {
	var p model.Pago
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *pagoRepo) ListByAtencion(ctx context.Context, atencionID uint) ([]model.Pago, error) {
	var pagos []model.Pago
	err := r.db.WithContext(ctx).
		Where("atencion_id = ?", atencionID).
		Order("fecha ASC").
		Find(&pagos).Error
	return pagos, err
}

// SumByAtencion suma los pagos ya registrados de una atencion. Se usa para
// detectar sobrepagos al registrar uno nuevo.
func (r *pagoRepo) SumByAtencion(ctx context.Context, atencionID uint) (decimal.Decimal, error) {
	var raw string
	err := r.db.WithContext(ctx).Model(&model.Pago{}).
		Select("COALESCE(SUM(monto), 0)").
		Where("atencion_id = ?", atencionID).
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(raw)
}

func (r *pagoRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Pago{}, id).Error
}
